package tools

func quoteTools() []Descriptor {
	quote := str("quoteNumber", "The quote number")
	item := strOrNum("itemNumber", "The quote line item number")

	header := []prop{
		str("customerCode", "Customer code"),
		str("status", "Quote status"),
		str("expireDate", "Expiration date (ISO format: yyyy-MM-dd)"),
	}

	return catalog("quotes",
		list("get_quotes", "Retrieve a list of quotes from JobBOSS2. Supports filtering, sorting, pagination, and field selection.",
			"/api/v1/quotes"),
		lookup("get_quote_by_id", "Retrieve a specific quote by its quote number.",
			"/api/v1/quotes/{quoteNumber}", quote),
		create("create_quote", "Create a new quote in JobBOSS2.", "/api/v1/quotes",
			schema(append([]prop{str("quoteNumber", "Quote number (optional if auto-numbering enabled)")}, header...)...).open().JSON()),
		update("update_quote", "Update an existing quote in JobBOSS2.", "/api/v1/quotes/{quoteNumber}",
			schema(append([]prop{quote}, header...)...).require("quoteNumber").open().JSON()),

		list("get_quote_line_items", "Retrieve quote line items across all quotes. Filter by quoteNumber, partNumber, status, etc.",
			"/api/v1/quote-line-items"),
		lookup("get_quote_line_item_by_id", "Retrieve a specific quote line item using quote number and line item number.",
			"/api/v1/quotes/{quoteNumber}/quote-line-items/{itemNumber}", quote, item),
		create("create_quote_line_item", "Create a new quote line item. Provide any JobBOSS2 quote line item fields (pricing, quantities, work code, etc.).",
			"/api/v1/quotes/{quoteNumber}/quote-line-items", patch(quote)),
		update("update_quote_line_item", "Update an existing quote line item by quote number and item number. Supply any fields to patch.",
			"/api/v1/quotes/{quoteNumber}/quote-line-items/{itemNumber}", patch(quote, item)),
	)
}
