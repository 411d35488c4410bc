// Package templates builds the client's pages as templ components.
package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
	"github.com/ethereum/go-ethereum/common"

	"github.com/mar-cial/whitelist"
)

// Layout wraps its children in the page chrome. A positive refreshSeconds
// adds a meta refresh so the page polls itself while a join confirmation is
// pending.
func Layout(title string, refreshSeconds int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<title>%s</title>", html.EscapeString(title)); err != nil {
			return err
		}
		if refreshSeconds > 0 {
			if _, err := fmt.Fprintf(w, `<meta http-equiv="refresh" content="%d">`, refreshSeconds); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</head><body><main>"); err != nil {
			return err
		}
		if err := templ.GetChildren(ctx).Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, "</main></body></html>")

		return err
	})
}

// Alerts renders one line per active alert.
func Alerts(lines []string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		for _, line := range lines {
			if _, err := fmt.Fprintf(w, `<p class="alert">%s</p>`, html.EscapeString(line)); err != nil {
				return err
			}
		}

		return nil
	})
}

// Status renders the registration count and, when one is connected, the
// account.
func Status(view whitelist.View) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<p>%d have already joined the Whitelist.</p>", view.NumberOfWhitelisted); err != nil {
			return err
		}

		if view.Account == (common.Address{}) {
			return nil
		}

		_, err := fmt.Fprintf(w, `<p class="account">Connected as %s.</p>`, html.EscapeString(view.Account.Hex()))

		return err
	})
}

// Action renders the view's single call-to-action.
func Action(affordance whitelist.Affordance) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var err error

		switch affordance {
		case whitelist.AffordanceThanks:
			_, err = io.WriteString(w, "<p>Thanks for joining the Whitelist!</p>")
		case whitelist.AffordanceLoading:
			_, err = io.WriteString(w, "<button disabled>Loading...</button>")
		case whitelist.AffordanceJoin:
			_, err = io.WriteString(w, `<form method="post" action="/join"><button type="submit">Join the Whitelist</button></form>`)
		default:
			_, err = io.WriteString(w, `<form method="post" action="/connect"><button type="submit">Connect your wallet</button></form>`)
		}

		return err
	})
}

// Page renders the whole document for a view. The page self-refreshes every
// refreshSeconds while the join confirmation is pending.
func Page(view whitelist.View, refreshSeconds int) templ.Component {
	refresh := 0
	if view.Affordance == whitelist.AffordanceLoading {
		refresh = refreshSeconds
	}

	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<h1>Whitelist</h1>"); err != nil {
			return err
		}

		for _, c := range []templ.Component{Alerts(view.Alerts), Status(view), Action(view.Affordance)} {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}

		return nil
	})

	layout := Layout("Whitelist", refresh)

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return layout.Render(templ.WithChildren(ctx, body), w)
	})
}
