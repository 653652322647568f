//go:build e2e

package e2e

import (
	"testing"
	"time"

	"github.com/cactat/cactat/internal/formdriver"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRod_PageLoadsWithHiddenCat opens the form in a Rod-driven Chrome, so the
// page is known to work outside Playwright's bundled browser.
func TestRod_PageLoadsWithHiddenCat(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping rod browser test in short mode")
	}

	u, err := launcher.New().
		Headless(cfg.Headless).
		Set("no-sandbox").
		Set("disable-gpu").
		Launch()
	require.NoError(t, err, "failed to launch Chrome")

	rodBrowser := rod.New().ControlURL(u)
	require.NoError(t, rodBrowser.Connect(), "failed to connect to Chrome")
	defer rodBrowser.Close()

	page, err := rodBrowser.Page(proto.TargetCreateTarget{URL: baseURL + "/"})
	require.NoError(t, err)
	page = page.Timeout(30 * time.Second)
	require.NoError(t, page.WaitLoad())

	info, err := page.Info()
	require.NoError(t, err)
	assert.Equal(t, formdriver.PageTitle, info.Title)

	cat, err := page.Element(formdriver.Cat)
	require.NoError(t, err)

	visible, err := cat.Visible()
	require.NoError(t, err)
	assert.False(t, visible, "cat should start hidden")

	_, err = cat.Eval(`() => { this.style.display = 'block' }`)
	require.NoError(t, err)

	visible, err = cat.Visible()
	require.NoError(t, err)
	assert.True(t, visible, "cat should be visible once shown")
}
