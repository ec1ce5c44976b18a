package remote

import (
	"context"
	"net/http"

	"github.com/cardvault-dev/cardvault/internal/model"
	"github.com/cardvault-dev/cardvault/internal/session"
)

// Push submits the given cards as a full replace of the user's remote
// collection and returns the number saved. It fails fast with
// session.ErrNotAuthenticated while Anonymous and with ErrNothingToPush
// for an empty collection; neither issues a network call.
func (c *Client) Push(ctx context.Context, cards []model.Card) (int, error) {
	if !c.session.Authenticated() {
		return 0, session.ErrNotAuthenticated
	}
	if len(cards) == 0 {
		return 0, ErrNothingToPush
	}

	req := pushRequest{Cards: make([]pushCard, len(cards))}
	for i, card := range cards {
		req.Cards[i] = toWire(card)
	}

	var resp pushResponse
	if err := c.do(ctx, http.MethodPost, cardsPath, req, &resp, true); err != nil {
		return 0, err
	}
	if resp.Status != statusSuccess {
		return 0, &TransportError{Op: "saving cards", Err: serverError(resp.Message, "save rejected")}
	}

	c.log.WithField("count", len(cards)).Debug("pushed cards")
	return len(cards), nil
}

// Pull fetches the user's remote collection mapped to the local card
// shape, in remote response order. It mutates nothing: the caller
// applies an import policy through the store, which keeps pulls
// all-or-nothing with respect to visible state. Fails fast with
// session.ErrNotAuthenticated while Anonymous.
func (c *Client) Pull(ctx context.Context) ([]model.Card, error) {
	if !c.session.Authenticated() {
		return nil, session.ErrNotAuthenticated
	}

	var resp pullResponse
	if err := c.do(ctx, http.MethodGet, cardsPath, nil, &resp, true); err != nil {
		return nil, err
	}
	if resp.Status != statusSuccess {
		return nil, &TransportError{Op: "loading cards", Err: serverError(resp.Message, "load rejected")}
	}

	cards := make([]model.Card, len(resp.Cards))
	for i, rec := range resp.Cards {
		cards[i] = fromWire(rec)
	}

	c.log.WithField("count", len(cards)).Debug("pulled cards")
	return cards, nil
}
