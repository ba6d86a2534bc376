// Package chat implements the rule-based assistant. Replies are canned;
// matching is plain substring containment over the lower-cased input.
package chat

import (
	"strings"

	"mtnshop/internal/models"
)

// Context is the read-only world state a reply may consult.
type Context struct {
	Products  []models.Product
	HasOrders bool
}

// rule pairs a keyword group with its reply builder. Rules are evaluated in
// order and the first match wins, so the order encodes intent priority:
// "order my data bundle" must hit the order rule, not the menu rule.
type rule struct {
	keywords []string
	reply    func(input string, ctx Context) string
}

type Responder struct {
	rules    []rule
	fallback func(input string, ctx Context) string
}

func static(text string) func(string, Context) string {
	return func(string, Context) string { return text }
}

func NewResponder() *Responder {
	return &Responder{
		rules: []rule{
			{
				keywords: []string{"hello", "hi", "hey"},
				reply:    static("Hello! Welcome to MTN Ghana. How can I help you today?"),
			},
			{
				keywords: []string{"menu", "products"},
				reply:    static("Our products are organized by categories. Please select a category from the sidebar to view available products."),
			},
			{
				keywords: []string{"price", "how much"},
				reply:    priceReply,
			},
			{
				keywords: []string{"order", "buy"},
				reply:    static("You can add products to your cart from the sidebar, then proceed to checkout."),
			},
			{
				keywords: []string{"status", "track"},
				reply:    statusReply,
			},
			{
				keywords: []string{"delivery"},
				reply:    static("We'll ask for your delivery address when you checkout. Physical products are delivered within 24 hours in Accra and 48 hours elsewhere."),
			},
			{
				keywords: []string{"payment"},
				reply:    static("We accept mobile money (MTN MoMo), credit cards, and cash on delivery."),
			},
			{
				keywords: []string{"cancel"},
				reply:    static("You can cancel orders from the 'My Orders' section if they haven't been processed yet."),
			},
		},
		fallback: static("I'm here to help with your MTN product orders. You can ask about products, prices, or your orders."),
	}
}

// Reply is pure: same input and context, same answer. The caller owns the
// side effect of appending both sides to the transcript.
func (r *Responder) Reply(input string, ctx Context) string {
	lowered := strings.ToLower(input)

	for _, rl := range r.rules {
		for _, kw := range rl.keywords {
			if strings.Contains(lowered, kw) {
				return rl.reply(lowered, ctx)
			}
		}
	}
	return r.fallback(lowered, ctx)
}

func priceReply(input string, ctx Context) string {
	for _, p := range ctx.Products {
		if strings.Contains(input, strings.ToLower(p.Name)) {
			return "The " + p.Name + " costs " + models.FormatCedis(p.Price)
		}
	}
	return "Please check the product prices in the sidebar."
}

func statusReply(_ string, ctx Context) string {
	if !ctx.HasOrders {
		return "You haven't placed any orders yet."
	}
	return "You can view your order status in the 'My Orders' section."
}
