package tools

func orderTools() []Descriptor {
	order := str("orderNumber", "The order number")
	item := num("itemNumber", "The line item number")
	step := num("stepNumber", "The routing step number")

	orderFields := []prop{
		str("customerCode", "Customer code"),
		str("PONumber", "Purchase order number"),
		str("status", "Order status"),
		str("dueDate", "Due date (ISO format: yyyy-MM-dd)"),
	}
	lineItemFields := []prop{
		str("partNumber", "Part number"),
		str("description", "Item description"),
		num("quantity", "Quantity"),
		num("price", "Price per unit"),
	}

	return catalog("orders",
		list("get_orders", "Retrieve a list of orders from JobBOSS2. Supports filtering, sorting, pagination, and field selection. Example filters: customerCode=ACME, status[in]=Open|InProgress, orderTotal[gte]=1000",
			"/api/v1/orders"),
		lookup("get_order_by_id", "Retrieve a specific order by its order number.",
			"/api/v1/orders/{orderNumber}", str("orderNumber", "The order number to retrieve")),
		create("create_order", "Create a new order in JobBOSS2.", "/api/v1/orders",
			schema(append([]prop{str("orderNumber", "Order number (optional if auto-numbering enabled)")}, orderFields...)...).
				require("customerCode").open().JSON()),
		update("update_order", "Update an existing order in JobBOSS2.", "/api/v1/orders/{orderNumber}",
			schema(append([]prop{str("orderNumber", "The order number to update")}, orderFields...)...).
				require("orderNumber").open().JSON()),

		lookup("get_order_line_items", "Retrieve line items for a specific order.",
			"/api/v1/orders/{orderNumber}/order-line-items", order),
		lookup("get_order_line_item_by_id", "Retrieve a specific order line item.",
			"/api/v1/orders/{orderNumber}/order-line-items/{itemNumber}", order, item),
		create("create_order_line_item", "Create a new line item for an order.",
			"/api/v1/orders/{orderNumber}/order-line-items",
			schema(append([]prop{order}, lineItemFields...)...).require("orderNumber").open().JSON()),
		update("update_order_line_item", "Update an existing order line item.",
			"/api/v1/orders/{orderNumber}/order-line-items/{itemNumber}",
			schema(append([]prop{order, item}, lineItemFields...)...).require("orderNumber", "itemNumber").open().JSON()),

		list("get_order_routings", "Retrieve a list of order routings from JobBOSS2 with optional filtering, sorting, and pagination.",
			"/api/v1/order-routings"),
		lookup("get_order_routing", "Retrieve a specific order routing by order number, line item, and step.",
			"/api/v1/orders/{orderNumber}/order-line-items/{itemNumber}/order-routings/{stepNumber}", order, item, step),
		create("create_order_routing", "Create a new routing for a specific order line item.",
			"/api/v1/orders/{orderNumber}/order-line-items/{itemNumber}/order-routings",
			schema(
				order,
				item,
				boolean("certificationRequired", "Whether the routing requires certification"),
				num("cyclePrice", "Cycle price"),
				num("cycleTime", "Cycle time"),
				str("cycleUnit", "Cycle time unit"),
				str("departmentNumber", "Department number"),
				str("description", "Routing description"),
				str("employeeCode", "Employee code"),
				str("estimatedEndDate", "Estimated end date (ISO format)"),
				num("estimatedQuantity", "Estimated quantity"),
				str("estimatedStartDate", "Estimated start date (ISO format)"),
				boolean("ignoreVendorMinimum", "Ignore vendor minimums"),
				str("operationCode", "Routing operation code"),
				boolean("overlapSteps", "Allow overlapping steps"),
				num("setupPrice", "Setup price"),
				num("setupTime", "Setup time"),
				str("shift2DefaultEmployeeCode", "Shift 2 default employee code"),
				str("shift3DefaultEmployeeCode", "Shift 3 default employee code"),
				num("stepNumber", "Routing step number"),
				str("timeUnit", "Time unit"),
				num("total", "Total cost"),
				str("vendorCode", "Vendor code"),
				str("workCenter", "Work center assigned"),
				str("workCenterOrVendor", "Work center or vendor identifier"),
			).require("orderNumber", "itemNumber", "workCenterOrVendor").open().JSON()),
		update("update_order_routing", "Update an existing order routing.",
			"/api/v1/orders/{orderNumber}/order-line-items/{itemNumber}/order-routings/{stepNumber}",
			schema(
				order,
				item,
				step,
				str("operationCode", "Routing operation code"),
				str("employeeCode", "Employee code"),
				str("estimatedEndDate", "Estimated end date (ISO format)"),
				str("estimatedStartDate", "Estimated start date (ISO format)"),
				str("workCenter", "Work center assigned"),
			).require("orderNumber", "itemNumber", "stepNumber").open().JSON()),

		create("create_order_release", "Create a release for a specific order line item.",
			"/api/v1/orders/{orderNumber}/order-line-items/{itemNumber}/releases",
			patch(str("orderNumber", "Order number"), strOrNum("itemNumber", "Order line item number"))),
		lookup("get_order_release_by_id", "Retrieve a specific release for an order line item by unique ID.",
			"/api/v1/orders/{orderNumber}/order-line-items/{itemNumber}/releases/{uniqueID}",
			str("orderNumber", "Order number"),
			strOrNum("itemNumber", "Order line item number"),
			strOrNum("uniqueID", "Release unique ID")),
	)
}
