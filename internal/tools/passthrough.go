package tools

import "net/http"

// passthroughTools covers the remaining JobBOSS2 resources one endpoint per
// tool.
func passthroughTools() []Descriptor {
	contactKeys := []prop{
		str("object", "Object type (Customer, Vendor, Prospect, etc.)"),
		str("contactCode", "Contact code (e.g., customer code)"),
		str("contact", "Contact identifier"),
	}
	shippingKeys := []prop{
		str("customerCode", "Customer code"),
		str("location", "Location identifier"),
	}

	return catalog("passthrough",
		list("get_ar_invoice_details", "Retrieve AR invoice detail rows with filtering and pagination.", "/api/v1/ar-invoice-details"),
		list("get_ar_invoices", "Retrieve AR invoices with optional filters such as customer, date, or status.", "/api/v1/ar-invoices"),
		list("get_company_calendars", "Retrieve company calendar definitions and capacities.", "/api/v1/company-calendars"),
		list("get_corrective_preventive_actions", "Retrieve corrective and preventive action records.", "/api/v1/corrective-preventive-actions"),
		lookup("get_corrective_preventive_action_by_number", "Retrieve a specific corrective/preventive action by its number.",
			"/api/v1/corrective-preventive-actions/{correctiveActionNumber}", str("correctiveActionNumber", "Corrective action number")),
		list("get_currency_codes", "Retrieve supported currency codes.", "/api/v1/currency-codes"),
		list("get_customer_returns", "Retrieve customer return headers.", "/api/v1/customer-returns"),
		list("get_customer_return_releases", "Retrieve customer return releases.", "/api/v1/customer-return-releases"),
		list("get_customer_return_line_items", "Retrieve customer return line items.", "/api/v1/customer-return-line-items"),
		list("get_departments", "Retrieve department master records.", "/api/v1/departments"),
		list("get_employee_trainings", "Retrieve employee training records.", "/api/v1/employee-trainings"),
		list("get_feedback", "Retrieve feedback records.", "/api/v1/feedback"),
		list("get_gl_codes", "Retrieve GL codes.", "/api/v1/gl-codes"),
		lookup("get_gl_code_by_account", "Retrieve a GL code by account number.",
			"/api/v1/gl-codes/{GLAccountNumber}", str("GLAccountNumber", "GL account number")),
		list("get_non_conformances", "Retrieve non-conformance records.", "/api/v1/non-conformances"),
		lookup("get_non_conformance_by_number", "Retrieve a specific non-conformance by number.",
			"/api/v1/non-conformances/{ncNumber}", str("ncNumber", "Non-conformance number")),
		list("get_operation_codes", "Retrieve operation codes.", "/api/v1/operation-codes"),
		lookup("get_operation_code_by_code", "Retrieve an operation code by its identifier.",
			"/api/v1/operation-codes/{operationCode}", str("operationCode", "Operation code")),
		list("get_all_order_line_items", "Retrieve order line items across all orders.", "/api/v1/order-line-items"),
		list("get_reason_codes", "Retrieve reason codes.", "/api/v1/reason-codes"),
		lookup("get_reason_code_by_id", "Retrieve a reason code by unique ID.",
			"/api/v1/reason-codes/{uniqueID}", strOrNum("uniqueID", "Unique identifier")),
		list("get_releases", "Retrieve release schedules across orders.", "/api/v1/releases"),
		list("get_shipping_addresses", "Retrieve shipping addresses for customers.", "/api/v1/shipping-addresses"),
		list("get_tax_codes", "Retrieve tax codes.", "/api/v1/tax-codes"),
		lookup("get_tax_code_by_code", "Retrieve a tax code by identifier.",
			"/api/v1/tax-codes/{taxCode}", str("taxCode", "Tax code")),
		list("get_terms", "Retrieve payment terms codes.", "/api/v1/terms"),
		lookup("get_terms_by_code", "Retrieve a terms record by code.",
			"/api/v1/terms/{termsCode}", str("termsCode", "Terms code")),
		list("get_tooling_maintenance", "Retrieve tooling maintenance records.", "/api/v1/tooling-maintenance"),
		list("get_user_labels", "Retrieve user labels.", "/api/v1/user-labels"),
		list("get_user_transactions", "Retrieve user transactions.", "/api/v1/user-transactions"),
		list("get_vendor_returns", "Retrieve vendor return headers.", "/api/v1/vendor-returns"),
		list("get_vendor_return_line_items", "Retrieve vendor return line items.", "/api/v1/vendor-returns-line-items"),
		list("get_vendor_return_releases", "Retrieve vendor return releases.", "/api/v1/vendor-returns-releases"),
		list("get_work_center_maintenance", "Retrieve work center maintenance records.", "/api/v1/work-center-maintenance"),
		endpoint{
			name:        "get_company",
			description: "Retrieve the company profile record.",
			method:      http.MethodGet,
			path:        "/api/v1/company",
			args:        pathOnly,
			schema:      noInputSchema,
		},

		list("get_contacts", "Retrieve contacts tied to customers, vendors, or prospects.", "/api/v1/contacts"),
		create("create_contact", "Create a new contact record. Provide all desired fields defined in the JobBOSS2 API.",
			"/api/v1/contacts", anyObjectSchema),
		lookup("get_contact_by_id", "Retrieve a contact using its object, contact code, and contact ID.",
			"/api/v1/contacts/{object}/{contactCode}/{contact}", contactKeys...),
		update("update_contact", "Update a contact record by specifying object, contact code, and contact ID.",
			"/api/v1/contacts/{object}/{contactCode}/{contact}", patch(contactKeys...)).
			withMessage("Contact {contact} updated successfully"),

		create("create_shipping_address", "Create a shipping address for a customer.",
			"/api/v1/shipping-addresses", patch(shippingKeys...)),
		lookup("get_shipping_address_by_id", "Retrieve a shipping address by customer code and location.",
			"/api/v1/shipping-addresses/{customerCode}/{location}", shippingKeys...),
		update("update_shipping_address", "Update a shipping address specified by customer code and location.",
			"/api/v1/shipping-addresses/{customerCode}/{location}", patch(shippingKeys...)).
			withMessage("Shipping address {location} updated successfully"),

		create("create_vendor", "Create a vendor record.", "/api/v1/vendors", anyObjectSchema),
		update("update_vendor", "Update a vendor by vendor code.",
			"/api/v1/vendors/{vendorCode}", patch(str("vendorCode", "Vendor code"))).
			withMessage("Vendor {vendorCode} updated successfully"),

		create("create_work_center", "Create a work center definition.", "/api/v1/work-centers", anyObjectSchema),
		update("update_work_center", "Update a work center by code.",
			"/api/v1/work-centers/{workCenter}", patch(str("workCenter", "Work center code"))).
			withMessage("Work center {workCenter} updated successfully"),

		update("update_employee", "Update an employee record in JobBOSS2.",
			"/api/v1/employees/{employeeCode}", patch(str("employeeCode", "Employee code"))).
			withMessage("Employee {employeeCode} updated successfully"),
		update("update_salesperson", "Update a salesperson record.",
			"/api/v1/salespersons/{salesID}", patch(str("salesID", "Salesperson ID"))).
			withMessage("Salesperson {salesID} updated successfully"),

		update("update_purchase_order", "Patch an existing purchase order by PO number.",
			"/api/v1/purchase-orders/{poNumber}", patch(str("poNumber", "Purchase order number"))).
			withMessage("Purchase order {poNumber} updated successfully"),
		update("update_purchase_order_line_item", "Patch a purchase order line item by PO number, part number, and item number.",
			"/api/v1/purchase-order-line-items/{purchaseOrderNumber}/{partNumber}/{itemNumber}",
			patch(
				str("purchaseOrderNumber", "Purchase order number"),
				str("partNumber", "Part number"),
				strOrNum("itemNumber", "Line item number"),
			)).
			withMessage("Purchase order line item {purchaseOrderNumber}-{itemNumber} updated successfully"),

		create("create_time_ticket", "Create a time ticket header for an employee/date.", "/api/v1/time-tickets", anyObjectSchema),
		update("update_time_ticket", "Update a time ticket by ticket date and employee code.",
			"/api/v1/time-tickets/{ticketDate}/employees/{employeeCode}",
			patch(
				str("ticketDate", "Ticket date (ISO format: yyyy-MM-dd)"),
				strOrNum("employeeCode", "Employee code"),
			)).
			withMessage("Time ticket {ticketDate}-{employeeCode} updated successfully"),
		create("create_time_ticket_detail", "Create a time ticket detail entry (labor transaction).",
			"/api/v1/time-ticket-details", anyObjectSchema),
		update("update_time_ticket_detail", "Update a time ticket detail entry by GUID.",
			"/api/v1/time-ticket-details/{timeTicketGUID}", patch(str("timeTicketGUID", "Time ticket detail GUID"))).
			withMessage("Time ticket detail {timeTicketGUID} updated successfully"),

		create("eci_aps_authenticate_user", "Authenticate against the ECI APS endpoints.",
			"/api/v1/eci-aps/authenticate-user", anyObjectSchema),
		list("eci_aps_get_schedule", "Retrieve the APS schedule feed.", "/api/v1/eci-aps/get-schedule"),

		create("shopview_authenticate_user", "Authenticate a ShopView user for kiosk dashboards.",
			"/api/v1/shopview/authenticate-user", anyObjectSchema),
		list("shopview_get_filters", "Retrieve ShopView filter definitions.", "/api/v1/shopview/filters"),
		list("shopview_get_jobs", "Retrieve ShopView job data for dashboards.", "/api/v1/shopview/get-jobs"),
		create("shopview_set_grid_option", "Persist ShopView grid option preferences.",
			"/api/v1/shopview/grid-option", anyObjectSchema),
		list("shopview_get_grid_options", "Retrieve saved ShopView grid options.", "/api/v1/shopview/grid-options"),
		list("shopview_kpi_jobs_closed", "Retrieve ShopView KPI data for jobs closed.", "/api/v1/shopview/kpi/jobs-closed"),
		list("shopview_kpi_jobs_in_progress", "Retrieve ShopView KPI data for jobs in progress.", "/api/v1/shopview/kpi/jobs-in-progress"),
		list("shopview_kpi_jobs_on_hold", "Retrieve ShopView KPI data for jobs on hold.", "/api/v1/shopview/kpi/jobs-on-hold"),
		list("shopview_kpi_jobs_past_due", "Retrieve ShopView KPI data for jobs past due.", "/api/v1/shopview/kpi/jobs-past-due"),
		list("shopview_kpi_definitions", "Retrieve KPI definitions for ShopView dashboards.", "/api/v1/shopview/kpi-definitions"),
		create("shopview_reset_grid_options", "Reset ShopView grid options to defaults.",
			"/api/v1/shopview/reset-grid-options", anyObjectSchema).
			withMessage("ShopView grid options reset request submitted"),
	)
}
