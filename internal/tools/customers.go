package tools

func customerTools() []Descriptor {
	contact := []prop{
		str("customerName", "Customer name"),
		str("phone", "Phone number"),
		str("billingAddress1", "Billing address line 1"),
	}

	return catalog("customers",
		list("get_customers", "Retrieve a list of customers from JobBOSS2. Supports filtering, sorting, pagination, and field selection.",
			"/api/v1/customers"),
		lookup("get_customer_by_code", "Retrieve a specific customer by their customer code.",
			"/api/v1/customers/{customerCode}", str("customerCode", "The customer code to retrieve")),
		create("create_customer", "Create a new customer in JobBOSS2.", "/api/v1/customers",
			schema(append([]prop{str("customerCode", "Customer code")}, contact...)...).
				require("customerCode", "customerName").open().JSON()),
		update("update_customer", "Update an existing customer in JobBOSS2.", "/api/v1/customers/{customerCode}",
			schema(append([]prop{str("customerCode", "The customer code to update")}, contact...)...).
				require("customerCode").open().JSON()),
	)
}
