package service

import (
	"context"

	"carrybid/internal/entities"

	"golang.org/x/sync/errgroup"
)

// OrderView assembles the composite read model for one order. It always
// reads the store directly so the caller sees the latest committed state.
func (s *OrderService) OrderView(ctx context.Context, orderID, requesterID string) (entities.OrderView, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return entities.OrderView{}, err
	}

	var (
		quotes  []entities.Quote
		parties map[string]entities.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		quotes, err = s.quotes.ListQuotes(gctx, order.OrderID)
		return err
	})
	g.Go(func() error {
		ids := []string{order.CustomerID}
		if order.PurchaserID != "" {
			ids = append(ids, order.PurchaserID)
		}
		var err error
		parties, err = s.users.GetUsersByIDs(gctx, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return entities.OrderView{}, err
	}

	role := entities.RoleAgent
	switch {
	case order.IsCustomer(requesterID):
		role = entities.RoleCustomer
	case order.IsPurchaser(requesterID):
		role = entities.RolePurchaser
	}

	// An outside agent only sees their own quotes on the order.
	if role == entities.RoleAgent {
		own := quotes[:0]
		for _, q := range quotes {
			if q.IsBidder(requesterID) {
				own = append(own, q)
			}
		}
		quotes = own
	}

	bidderIDs := make([]string, 0, len(quotes))
	for _, q := range quotes {
		bidderIDs = append(bidderIDs, q.BidderID)
	}
	bidders, err := s.users.GetUsersByIDs(ctx, bidderIDs)
	if err != nil {
		return entities.OrderView{}, err
	}

	quoteViews := make([]entities.QuoteView, 0, len(quotes))
	for _, q := range quotes {
		quoteViews = append(quoteViews, entities.QuoteView{
			Quote:      q,
			BidderName: bidders[q.BidderID].Name,
		})
	}

	view := entities.OrderView{
		Order:    order,
		Viewer:   role,
		Customer: partyFromUser(parties[order.CustomerID]),
		Quotes:   quoteViews,
	}
	if order.PurchaserID != "" {
		p := partyFromUser(parties[order.PurchaserID])
		view.Purchaser = &p
	}

	// Contact details stay between the two bound parties; everyone else gets
	// display names only.
	if role == entities.RoleAgent {
		view.Customer = redactParty(view.Customer)
		if view.Purchaser != nil {
			p := redactParty(*view.Purchaser)
			view.Purchaser = &p
		}
	}

	return view, nil
}

func partyFromUser(u entities.User) entities.Party {
	return entities.Party{
		UserID:  u.UserID,
		Name:    u.Name,
		Email:   u.Email,
		Phone:   u.Phone,
		Country: u.Country,
		Address: u.Address,
	}
}

func redactParty(p entities.Party) entities.Party {
	return entities.Party{
		UserID:  p.UserID,
		Name:    p.Name,
		Country: p.Country,
	}
}
