package tools

func employeeTools() []Descriptor {
	ticketDate := str("ticketDate", "Ticket date (ISO format: yyyy-MM-dd)")
	employee := strOrNum("employeeCode", "Employee code")

	tools := catalog("employees",
		list("get_employees", "Retrieve a list of employees from JobBOSS2. Supports filtering, sorting, pagination, and field selection.",
			"/api/v1/employees"),
		lookup("get_employee_by_id", "Retrieve a specific employee by their employee ID.",
			"/api/v1/employees/{employeeID}", strOrNum("employeeID", "The employee ID")),

		list("get_attendance_tickets", "Retrieve a list of attendance tickets from JobBOSS2. Supports filtering by employee, date range, and other fields.",
			"/api/v1/attendance-tickets"),
		lookup("get_attendance_ticket_by_id", "Retrieve a specific attendance ticket by ticket date and employee code.",
			"/api/v1/attendance-tickets/{ticketDate}/employees/{employeeCode}", ticketDate, employee),
		create("create_attendance_ticket", "Create a new attendance ticket in JobBOSS2.", "/api/v1/attendance-tickets",
			schema(ticketDate, employee).require("ticketDate", "employeeCode").open().JSON()),

		list("get_attendance_ticket_details", "Retrieve a list of attendance ticket details (clock in/out times) from JobBOSS2. Supports filtering by employee, date, and other criteria.",
			"/api/v1/attendance-ticket-details"),
		create("create_attendance_ticket_detail", "Create a new attendance ticket detail (clock in/out entry) for a specific ticket.",
			"/api/v1/attendance-tickets/{ticketDate}/employees/{employeeCode}/attendance-ticket-details",
			schema(
				ticketDate,
				employee,
				str("attendanceType", "Attendance type (e.g., Regular, Sick, Vacation)"),
				str("clockIn", "Clock in time (ISO format)"),
				str("clockOut", "Clock out time (ISO format)"),
				num("hours", "Hours recorded"),
			).require("ticketDate", "employeeCode").open().JSON()),
		update("update_attendance_ticket_detail", "Update an existing attendance ticket detail (clock in/out times).",
			"/api/v1/attendance-ticket-details/{id}", patch(strOrNum("id", "Attendance ticket detail ID"))).voidResult(),

		list("get_salespersons", "Retrieve salesperson master records including commission settings and contact info.",
			"/api/v1/salespersons"),

		list("get_time_ticket_details", "Retrieve shop floor time ticket detail entries (clocked labor) across jobs, work centers, or employees.",
			"/api/v1/time-ticket-details"),
		lookup("get_time_ticket_detail_by_id", "Retrieve a single time ticket detail by its GUID.",
			"/api/v1/time-ticket-details/{timeTicketGUID}", str("timeTicketGUID", "Time ticket detail GUID")),
		list("get_time_tickets", "Retrieve time ticket headers (per employee per day).", "/api/v1/time-tickets"),
		lookup("get_time_ticket_by_id", "Retrieve a specific time ticket header by ticket date and employee code.",
			"/api/v1/time-tickets/{ticketDate}/employees/{employeeCode}", ticketDate, employee),
	)

	return append(tools, Descriptor{
		Name:        "get_attendance_report",
		Category:    "employees",
		Description: "Generate a comprehensive attendance report for a date range. This report includes ALL attendance types: regular work time, sick time, vacation, and other leave. Perfect for weekly/daily attendance reports that need to show both worked hours and absences.",
		InputSchema: schema(
			str("startDate", "Start date (ISO format: yyyy-MM-dd)"),
			str("endDate", "End date (ISO format: yyyy-MM-dd)"),
			strList("employeeCodes", "Optional list of employee codes to include"),
		).require("startDate", "endDate").JSON(),
		Handler: attendanceReport,
	})
}
