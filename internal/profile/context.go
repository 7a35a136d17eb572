// Package profile builds the grounding context the assistant answers from.
package profile

import (
	"context"
	"fmt"
	"strings"

	"portfolio-assistant/internal/domain"
	"portfolio-assistant/internal/integrations/paramstore"
)

// Load fetches and decodes the profile snapshot from the parameter store.
// It is called once at process start; the decoded Profile is read-only
// from then on.
func Load(ctx context.Context, g paramstore.Getter, name string) (domain.Profile, error) {
	var p domain.Profile
	if err := paramstore.GetJSON(ctx, g, name, &p); err != nil {
		return domain.Profile{}, fmt.Errorf("profile: load %q: %w", name, err)
	}
	if strings.TrimSpace(p.OwnerName) == "" {
		return domain.Profile{}, fmt.Errorf("profile: document %q has no owner name", name)
	}
	return p, nil
}

// Build assembles the knowledge block embedded in every system instruction:
// identity claim, bio, skills, project summaries, work history, education,
// and the current date/time. Deterministic for a given profile and
// timestamp; no I/O.
func Build(p domain.Profile, now string) string {
	var b strings.Builder

	assistant := p.AssistantName
	if assistant == "" {
		assistant = "Assistant"
	}
	fmt.Fprintf(&b, "You are %s, a personal assistant created by %s.\n\n", assistant, p.OwnerName)

	fmt.Fprintf(&b, "About %s:\n%s\n", p.OwnerName, strings.TrimSpace(p.Bio))
	if p.Location != "" {
		fmt.Fprintf(&b, "Based in %s.\n", p.Location)
	}

	if len(p.Skills) > 0 {
		fmt.Fprintf(&b, "\nSkills: %s\n", strings.Join(p.Skills, ", "))
	}

	if len(p.Projects) > 0 {
		b.WriteString("\nProjects:\n")
		for i, proj := range p.Projects {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "%s: %s", proj.Title, strings.TrimSpace(proj.Description))
			if len(proj.Tech) > 0 {
				fmt.Fprintf(&b, " (built with %s)", strings.Join(proj.Tech, ", "))
			}
			b.WriteString("\n")
		}
	}

	if len(p.Work) > 0 {
		b.WriteString("\nWork history:\n")
		for _, w := range p.Work {
			if w.Company != "" {
				fmt.Fprintf(&b, "- %s at %s\n", w.Title, w.Company)
			} else {
				fmt.Fprintf(&b, "- %s\n", w.Title)
			}
		}
	}

	if len(p.Education) > 0 {
		b.WriteString("\nEducation:\n")
		for _, d := range p.Education {
			if d.School != "" {
				fmt.Fprintf(&b, "- %s, %s\n", d.Degree, d.School)
			} else {
				fmt.Fprintf(&b, "- %s\n", d.Degree)
			}
		}
	}

	fmt.Fprintf(&b, "\nCurrent date and time: %s\n", now)
	return b.String()
}
