package gophermap

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/riskibarqy/standings-gopher/internal/domain/competition"
)

func TestBanner_LastUpdatedFormat(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.October, 6, 21, 4, 5, 0, time.FixedZone("WIB", 7*60*60))
	banner := Banner(now)

	assert.Contains(t, banner, "Last updated Tue Oct  6 14:04:05 2026\n")
	assert.Contains(t, banner, "See how your team is doing with some nice soccer standings.")
	assert.True(t, strings.HasPrefix(banner, "\n\n   |"))
}

func TestIndexEntry(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0Premier League\t2021.txt\n", IndexEntry(competition.Competition{ID: 2021, Name: "Premier League"}))
}

func TestRenderIndex(t *testing.T) {
	t.Parallel()

	competitions := []competition.Competition{
		{ID: 2016, Name: "Championship"},
		{ID: 2021, Name: "Premier League"},
	}
	now := time.Date(2026, time.October, 16, 9, 0, 0, 0, time.UTC)

	t.Run("menu", func(t *testing.T) {
		t.Parallel()

		out := RenderIndex(competitions, now, Options{Menu: true})
		assert.True(t, strings.HasPrefix(out, Banner(now)))
		assert.True(t, strings.HasSuffix(out, "0Championship\t2016.txt\n0Premier League\t2021.txt\n\r\n."))
	})

	t.Run("plain", func(t *testing.T) {
		t.Parallel()

		out := RenderIndex(competitions, now, Options{})
		assert.Equal(t, "0Championship\t2016.txt\n0Premier League\t2021.txt\n", out)
	})
}
