package gophermap

import (
	"fmt"
	"time"

	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/standings-gopher/internal/domain/competition"
)

const (
	// Terminator ends a menu file.
	Terminator = "\r\n."
	// LastUpdatedLayout prints e.g. "Fri Oct 16 09:05:00 2026".
	LastUpdatedLayout = "Mon Jan _2 15:04:05 2006"

	itemTypeText = '0'
)

const bannerArt = `

   |             |             |
   |___          |          ___|
   |_  |         |         |  _|
  .| | |.       ,|.       .| | |.
  || | | )     ( | )     ( | | ||
  '|_| |'       ` + "`" + `|'       ` + "`" + `| |_|'
   |___|         |         |___|
   |             |             |
   |_____________|_____________|

See how your team is doing with some nice soccer standings.
Sync happens every 1 hour or so.

`

// Banner is the index page heading with the last update time in UTC.
func Banner(now time.Time) string {
	return fmt.Sprintf("%sLast updated %s\n\n", bannerArt, now.UTC().Format(LastUpdatedLayout))
}

// IndexEntry is the menu line that links a competition to its page.
func IndexEntry(c competition.Competition) string {
	return fmt.Sprintf("%c%s\t%s\n", itemTypeText, c.Name, c.FileName())
}

// RenderIndex renders the menu listing every competition in order. now is
// only used when opts.Menu is set.
func RenderIndex(competitions []competition.Competition, now time.Time, opts Options) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if opts.Menu {
		_, _ = buf.WriteString(Banner(now))
	}
	for _, c := range competitions {
		_, _ = buf.WriteString(IndexEntry(c))
	}
	if opts.Menu {
		_, _ = buf.WriteString(Terminator)
	}

	return buf.String()
}
