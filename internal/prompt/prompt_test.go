package prompt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender_SubstitutesPlaceholders(t *testing.T) {
	out, err := Render("Generate {{.NumTitles}} titles about {{.Topic}}.", map[string]string{
		"NumTitles": "12",
		"Topic":     "cloud computing",
	})
	require.NoError(t, err)
	require.Equal(t, "Generate 12 titles about cloud computing.", out)
}

func TestRender_MissingPlaceholderFails(t *testing.T) {
	_, err := Render("Hello {{.Name}}", map[string]string{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "render template")
}

func TestRender_MalformedTemplateFails(t *testing.T) {
	_, err := Render("Hello {{.Name", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse template")
}

func TestChatSystemTemplate_RendersWithProfileContext(t *testing.T) {
	out, err := Render(ChatSystemTemplate, map[string]string{
		"ProfileContext": "You are Nova, a personal assistant created by Jane Doe.",
	})
	require.NoError(t, err)
	require.Contains(t, out, "created by Jane Doe")
	require.Contains(t, out, "Mirror Hindi with Hindi, Hinglish with Hinglish, and English with English.")
	require.Contains(t, out, "exactly two top-level fields")
	require.Contains(t, out, `"suggestedFollowUps"`)
}

func TestTitlesSystemTemplate_RendersCountAndTopic(t *testing.T) {
	out, err := Render(TitlesSystemTemplate, map[string]string{
		"NumTitles": "11",
		"Topic":     "distributed systems",
	})
	require.NoError(t, err)
	require.Contains(t, out, "Generate exactly 11 blog post titles about distributed systems.")
	require.Contains(t, out, `"titles"`)
	require.Contains(t, out, "Example for 2 titles")
}

func TestContentSystemTemplate_HasNoPlaceholders(t *testing.T) {
	out, err := Render(ContentSystemTemplate, nil)
	require.NoError(t, err)
	require.Contains(t, out, "informative blog post body")
	require.Contains(t, out, `"content"`)
}
