package export

import (
	"bytes"
	"cmp"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/lysyi3m/actus-navigator/app/cfg"
	"github.com/lysyi3m/actus-navigator/app/feed"
)

const defaultTitle = "Actus ULB"

// Generator renders the collected items into one self-contained HTML
// document: styling, item data, and the keyword filter are all
// embedded, so the page works offline.
type Generator struct {
	title string
}

func NewGenerator(title string) *Generator {
	return &Generator{title: cmp.Or(title, defaultTitle)}
}

func (g *Generator) Run(items []feed.Item) string {
	var buf bytes.Buffer

	buf.WriteString("<!DOCTYPE html>\n<html lang=\"fr\">\n<head>\n")
	buf.WriteString("  <meta charset=\"utf-8\">\n")
	buf.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&buf, "  <title>%s</title>\n", html.EscapeString(g.title))
	buf.WriteString("  <style>\n")
	buf.WriteString(pageStyle)
	buf.WriteString("  </style>\n</head>\n<body>\n")
	buf.WriteString(butterflyLayer)

	buf.WriteString("  <header>\n")
	fmt.Fprintf(&buf, "    <h1>%s</h1>\n", html.EscapeString(g.title))
	buf.WriteString("    <p class=\"subtitle\">Un espace apaisant pour parcourir les dernières nouvelles de l'ULB.</p>\n")
	buf.WriteString("    <div class=\"search-wrapper\">\n")
	buf.WriteString("      <span class=\"pill\">Filtrer</span>\n")
	buf.WriteString("      <input id=\"search\" type=\"search\" placeholder=\"Entrez des mots clés...\" aria-label=\"Filtrer les actualités\">\n")
	buf.WriteString("    </div>\n  </header>\n")

	buf.WriteString("  <main id=\"articles\">\n")
	for _, item := range items {
		g.writeCard(&buf, item)
	}
	g.writeEmptyState(&buf, len(items) > 0)
	buf.WriteString("  </main>\n")

	generatedAt := time.Now().Format("02/01/2006 15:04")
	buf.WriteString("  <footer>\n")
	fmt.Fprintf(&buf, "    Généré le %s avec actus-navigator/%s. Les contenus appartiennent à l'Université libre de Bruxelles.\n",
		html.EscapeString(generatedAt), html.EscapeString(cfg.GetVersion()))
	buf.WriteString("  </footer>\n")

	buf.WriteString("  <script>\n")
	buf.WriteString(filterScript)
	buf.WriteString("  </script>\n</body>\n</html>\n")

	return buf.String()
}

func (g *Generator) writeCard(buf *bytes.Buffer, item feed.Item) {
	keywords := Normalize(strings.Join([]string{item.Title, item.Summary, item.Date, item.Link}, " "))

	fmt.Fprintf(buf, "    <article class=\"card\" data-keywords=\"%s\">\n", html.EscapeString(keywords))
	fmt.Fprintf(buf, "      <h2><a href=\"%s\" target=\"_blank\" rel=\"noopener noreferrer\">%s</a></h2>\n",
		html.EscapeString(item.Link), html.EscapeString(item.Title))
	if item.Date != "" {
		fmt.Fprintf(buf, "      <p class=\"meta\">%s</p>\n", html.EscapeString(item.Date))
	}
	if item.Summary != "" {
		fmt.Fprintf(buf, "      <p>%s</p>\n", html.EscapeString(item.Summary))
	} else {
		buf.WriteString("      <p class=\"meta\">Pas de résumé disponible.</p>\n")
	}
	buf.WriteString("    </article>\n")
}

// writeEmptyState emits the placeholder shown when no card is visible,
// either because nothing was collected or because a filter matched
// nothing. The filter script toggles its visibility.
func (g *Generator) writeEmptyState(buf *bytes.Buffer, hasItems bool) {
	attrs := ""
	message := "Aucune actualité n'a pu être chargée. Réessayez plus tard."
	if hasItems {
		attrs = " hidden"
		message = "Aucune actualité ne correspond à votre recherche pour le moment."
	}
	fmt.Fprintf(buf, "    <p class=\"empty-state\"%s>%s</p>\n", attrs, message)
}

const butterflyLayer = `  <div class="butterfly-layer" aria-hidden="true">
    <span class="butterfly" style="--delay: -2s; --duration: 24s; --size: 40px;"></span>
    <span class="butterfly" style="--delay: -8s; --duration: 28s; --size: 48px;"></span>
    <span class="butterfly" style="--delay: -12s; --duration: 26s; --size: 36px;"></span>
    <span class="butterfly" style="--delay: -4s; --duration: 30s; --size: 44px;"></span>
    <span class="butterfly" style="--delay: -16s; --duration: 32s; --size: 38px;"></span>
    <span class="butterfly" style="--delay: -20s; --duration: 27s; --size: 46px;"></span>
  </div>
`

const pageStyle = `    :root {
      color-scheme: light dark;
      --bg: #f6f6f0;
      --card-bg: rgba(255, 255, 255, 0.75);
      --accent: #2f8f83;
      --accent-soft: rgba(47, 143, 131, 0.12);
      --text: #33433f;
      --muted: #60706c;
      --shadow: 0 20px 40px rgba(15, 31, 28, 0.12);
      font-family: 'Helvetica Neue', 'Segoe UI', sans-serif;
    }

    body {
      margin: 0;
      min-height: 100vh;
      background: linear-gradient(160deg, var(--bg) 0%, #e7efe9 50%, #f4f0ff 100%);
      color: var(--text);
      display: flex;
      flex-direction: column;
      align-items: center;
      padding: 4rem 1rem 3rem;
      transition: background 0.4s ease;
      position: relative;
    }

    header {
      max-width: 960px;
      width: 100%;
      text-align: center;
      margin-bottom: 2rem;
      position: relative;
      z-index: 1;
    }

    h1 {
      font-weight: 300;
      letter-spacing: 0.12em;
      text-transform: uppercase;
      margin-bottom: 0.75rem;
    }

    .subtitle {
      color: var(--muted);
      margin-bottom: 2rem;
    }

    .search-wrapper {
      position: relative;
      display: inline-flex;
      align-items: center;
      background: var(--card-bg);
      padding: 0.75rem 1rem;
      border-radius: 999px;
      box-shadow: var(--shadow);
    }

    .search-wrapper input {
      border: none;
      outline: none;
      background: transparent;
      font-size: 1rem;
      min-width: 18rem;
      color: inherit;
    }

    main {
      width: 100%;
      max-width: 960px;
      display: grid;
      grid-template-columns: repeat(auto-fit, minmax(280px, 1fr));
      gap: 1.5rem;
      position: relative;
      z-index: 1;
    }

    article.card {
      background: var(--card-bg);
      backdrop-filter: blur(8px);
      border-radius: 24px;
      padding: 1.75rem;
      box-shadow: var(--shadow);
      display: flex;
      flex-direction: column;
      gap: 1rem;
      transition: transform 0.3s ease, box-shadow 0.3s ease;
    }

    article.card:hover {
      transform: translateY(-6px);
      box-shadow: 0 30px 45px rgba(15, 31, 28, 0.18);
    }

    article.card h2 {
      margin: 0;
      font-size: 1.35rem;
      font-weight: 400;
    }

    article.card a {
      color: var(--accent);
      text-decoration: none;
    }

    article.card a:hover {
      text-decoration: underline;
    }

    .meta {
      font-size: 0.9rem;
      color: var(--muted);
      text-transform: uppercase;
      letter-spacing: 0.08em;
    }

    .empty-state {
      grid-column: 1 / -1;
      text-align: center;
      background: var(--card-bg);
      padding: 2rem;
      border-radius: 24px;
      box-shadow: var(--shadow);
    }

    footer {
      margin-top: 3rem;
      text-align: center;
      font-size: 0.85rem;
      color: var(--muted);
      position: relative;
      z-index: 1;
    }

    .pill {
      display: inline-flex;
      align-items: center;
      gap: 0.35rem;
      background: var(--accent-soft);
      color: var(--accent);
      padding: 0.35rem 0.85rem;
      border-radius: 999px;
      font-size: 0.8rem;
      letter-spacing: 0.05em;
      text-transform: uppercase;
    }

    .butterfly-layer {
      position: fixed;
      inset: 0;
      overflow: hidden;
      pointer-events: none;
      z-index: 0;
    }

    .butterfly {
      position: absolute;
      bottom: -12vh;
      width: var(--size, 42px);
      height: var(--size, 42px);
      opacity: 0;
      transform-origin: center;
      animation: flutter var(--duration, 22s) linear infinite;
      animation-delay: var(--delay, 0s);
    }

    .butterfly::before,
    .butterfly::after {
      content: "";
      position: absolute;
      width: 70%;
      height: 70%;
      top: 15%;
      border-radius: 100% 0 100% 0;
      background: radial-gradient(circle at 30% 30%, rgba(255, 255, 255, 0.9), rgba(47, 143, 131, 0.15));
      box-shadow: 0 0 12px rgba(47, 143, 131, 0.25);
    }

    .butterfly::before {
      left: -10%;
      transform: rotate(35deg);
    }

    .butterfly::after {
      right: -10%;
      transform: scaleX(-1) rotate(35deg);
    }

    @keyframes flutter {
      0% {
        transform: translate3d(0, 0, 0) scale(0.9) rotate(-8deg);
        opacity: 0;
      }
      12% {
        opacity: 0.7;
      }
      50% {
        transform: translate3d(var(--sway, 60px), -55vh, 0) scale(1) rotate(10deg);
        opacity: 0.85;
      }
      86% {
        opacity: 0.65;
      }
      100% {
        transform: translate3d(calc(var(--sway, 60px) * -0.4), -110vh, 0) scale(0.95) rotate(-8deg);
        opacity: 0;
      }
    }

    @media (max-width: 600px) {
      body {
        padding-top: 3rem;
      }

      .search-wrapper input {
        min-width: 12rem;
      }
    }
`

const filterScript = `    const searchInput = document.getElementById('search');
    const cards = Array.from(document.querySelectorAll('article.card'));
    const emptyState = document.querySelector('.empty-state');
    const butterflies = Array.from(document.querySelectorAll('.butterfly'));

    function normalise(text) {
      if (!text) return '';
      let base = text.toLowerCase();
      if (base.normalize) {
        base = base.normalize('NFD');
      }
      return base
        .replace(/[\u0300-\u036f]/g, '')
        .replace(/[^a-z0-9\s]/g, ' ')
        .replace(/\s+/g, ' ')
        .trim();
    }

    const cardMetadata = cards.map(card => ({
      element: card,
      keywords: (card.dataset.keywords || '') + ' ' + normalise(card.textContent || '')
    }));

    function filterCards() {
      if (!searchInput) {
        return;
      }
      const query = normalise(searchInput.value || '');
      if (!query) {
        cardMetadata.forEach(item => item.element.hidden = false);
        if (emptyState) emptyState.hidden = cardMetadata.length > 0 ? true : false;
        return;
      }

      const tokens = query.split(' ').filter(Boolean);
      let visibleCount = 0;
      cardMetadata.forEach(item => {
        const matches = tokens.every(token => item.keywords.includes(token));
        item.element.hidden = !matches;
        if (matches) visibleCount += 1;
      });

      if (emptyState) emptyState.hidden = visibleCount !== 0;
    }

    if (searchInput) {
      searchInput.addEventListener('input', filterCards);
      searchInput.addEventListener('search', filterCards);
      filterCards();
    }

    butterflies.forEach(butterfly => {
      const randomise = () => {
        const left = Math.random() * 100;
        const sway = 40 + Math.random() * 80;
        const duration = 22 + Math.random() * 10;
        const delay = -Math.random() * 20;
        butterfly.style.left = left + '%';
        butterfly.style.setProperty('--sway', sway + 'px');
        butterfly.style.setProperty('--duration', duration + 's');
        butterfly.style.setProperty('--delay', delay + 's');
      };
      randomise();
      butterfly.addEventListener('animationiteration', randomise);
    });
`
