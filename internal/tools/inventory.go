package tools

func inventoryTools() []Descriptor {
	return catalog("inventory",
		list("get_materials", "Retrieve materials (inventory items) from JobBOSS2. Supports filtering, sorting, pagination, and field selection.",
			"/api/v1/materials"),
		lookup("get_material_by_part_number", "Retrieve a specific material by its part number.",
			"/api/v1/materials/{partNumber}", str("partNumber", "The material part number")),

		list("get_purchase_orders", "Retrieve purchase order headers. Filter by vendor, status, dates, etc.",
			"/api/v1/purchase-orders"),
		lookup("get_purchase_order_by_number", "Retrieve a specific purchase order by its PO number.",
			"/api/v1/purchase-orders/{poNumber}", str("poNumber", "Purchase order number")),
		list("get_purchase_order_line_items", "Retrieve purchase order line items across all purchase orders.",
			"/api/v1/purchase-order-line-items"),

		list("get_vendors", "Retrieve vendor master records.", "/api/v1/vendors"),
		lookup("get_vendor_by_code", "Retrieve a specific vendor by vendor code.",
			"/api/v1/vendors/{vendorCode}", str("vendorCode", "Vendor code")),

		list("get_bin_locations", "Retrieve inventory bin locations.", "/api/v1/bin-locations"),
		list("get_packing_lists", "Retrieve packing list headers.", "/api/v1/packing-lists"),
		lookup("get_packing_list_by_number", "Retrieve a specific packing list by its number.",
			"/api/v1/packing-lists/{packlistNumber}", str("packlistNumber", "Packing list number")),
	)
}
