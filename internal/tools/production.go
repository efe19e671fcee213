package tools

import "net/http"

func productionTools() []Descriptor {
	part := str("partNumber", "The estimate part number")

	return catalog("production",
		list("get_estimates", "Retrieve a list of estimates (part master records) from JobBOSS2. Supports filtering, sorting, pagination, and field selection.",
			"/api/v1/estimates"),
		lookup("get_estimate_by_part_number", "Retrieve a specific estimate (part master record) by its part number.",
			"/api/v1/estimates/{partNumber}", part),
		create("create_estimate", "Create a new estimate (part master record) in JobBOSS2. This creates a new part number with pricing, costing, and bill of materials information.",
			"/api/v1/estimates",
			schema(
				part,
				str("description", "Part description"),
				str("productCode", "Product code"),
				str("unitOfMeasure", "Stocking unit of measure"),
			).require("partNumber").open().JSON()),
		endpoint{
			name:        "update_estimate",
			description: "Update an existing estimate (part master record) in JobBOSS2.",
			method:      http.MethodPut,
			path:        "/api/v1/estimates/{partNumber}",
			args:        bodyRest,
			schema:      patch(part),
			void:        true,
		},

		list("get_routings", "Retrieve routings (work center steps) independent of orders, filtered by part number, work center, etc.",
			"/api/v1/routings"),
		lookup("get_routing_by_part_number", "Retrieve a specific routing tied to an estimate part number and step number.",
			"/api/v1/estimates/{partNumber}/routings/{stepNumber}", part, strOrNum("stepNumber", "The routing step number")),

		list("get_work_centers", "Retrieve work center definitions including labor/burden rates and capacity factors.",
			"/api/v1/work-centers"),
		lookup("get_work_center_by_code", "Retrieve a specific work center by its code.",
			"/api/v1/work-centers/{workCenter}", str("workCenter", "Work center code")),

		lookup("get_estimate_material_by_sub_part", "Retrieve a specific material of an estimate by the parent part number and sub-part (material) number. Useful for checking bill of materials details.",
			"/api/v1/estimates/{partNumber}/materials/{subPartNumber}", part, str("subPartNumber", "The sub-part (material) number")),
	)
}
