//go:build e2e

package e2e

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cactat/cactat/internal/formdriver"
	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

const fixtureImage = "image.png"

type visitOptions struct {
	// freeze page timers so message timeouts are advanced by hand
	clock bool
}

// visitForm opens the form in a fresh page and checks its title. The page is
// closed when the test ends.
func visitForm(t *testing.T, opts visitOptions) playwright.Page {
	t.Helper()

	page, err := browser.NewPage()
	require.NoError(t, err, "failed to open page")
	t.Cleanup(func() { page.Close() })

	page.SetDefaultTimeout(cfg.TimeoutMillis())

	if opts.clock {
		require.NoError(t, page.Clock().Install(), "failed to install clock")
	}

	_, err = page.Goto(baseURL + "/")
	require.NoError(t, err, "failed to navigate to form")

	title, err := page.Title()
	require.NoError(t, err)
	require.Equal(t, formdriver.PageTitle, title)

	return page
}

// tick advances the frozen page clock past the message timeout
func tick(t *testing.T, page playwright.Page) {
	t.Helper()
	require.NoError(t, page.Clock().RunFor(formdriver.MessageTimeoutMs))
}

// expectMessageThenHidden asserts the message shows text and disappears once
// the timeout elapses
func expectMessageThenHidden(t *testing.T, page playwright.Page, selector, text string) {
	t.Helper()

	message := page.Locator(selector)
	require.NoError(t, expect.Locator(message).ToBeVisible())
	require.NoError(t, expect.Locator(message).ToContainText(text))

	tick(t, page)

	require.NoError(t, expect.Locator(message).ToBeHidden())
}

func fixturePath(t *testing.T, name string) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("testdata", name))
	require.NoError(t, err)
	return path
}

func loadFixture(t *testing.T, name string) playwright.InputFile {
	t.Helper()
	data, err := os.ReadFile(fixturePath(t, name))
	require.NoError(t, err, "failed to read fixture %s", name)
	return playwright.InputFile{
		Name:     name,
		MimeType: "image/png",
		Buffer:   data,
	}
}
