package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/jobboss2"
)

// attendancePageSize is the take sent with a report query. The report is
// built from a single page.
const attendancePageSize = 10000

// AttendanceReport groups attendance ticket details by employee.
type AttendanceReport struct {
	StartDate    string               `json:"startDate"`
	EndDate      string               `json:"endDate"`
	TotalEntries int                  `json:"totalEntries"`
	Employees    []EmployeeAttendance `json:"employees"`
}

// EmployeeAttendance is one employee's entries in upstream order.
type EmployeeAttendance struct {
	EmployeeCode string            `json:"employeeCode"`
	Entries      []json.RawMessage `json:"entries"`
}

func attendanceReport(ctx context.Context, args Args, c Caller) (any, error) {
	start, end := args.String("startDate"), args.String("endDate")

	query := jobboss2.Query{
		{Key: "ticketDate[gte]", Value: start},
		{Key: "ticketDate[lte]", Value: end},
	}
	if codes := args.Strings("employeeCodes"); len(codes) > 0 {
		query = append(query, jobboss2.Param{Key: "employeeCode[in]", Value: strings.Join(codes, "|")})
	}
	query = append(query, jobboss2.Param{Key: "take", Value: attendancePageSize})

	spec, err := jobboss2.Build(http.MethodGet, "/api/v1/attendance-ticket-details", nil, query)
	if err != nil {
		return nil, err
	}
	result, err := c.Do(ctx, spec)
	if err != nil {
		return nil, err
	}

	rows, err := attendanceRows(result)
	if err != nil {
		return nil, err
	}
	return groupAttendance(start, end, rows)
}

// attendanceRows accepts either a bare array or an object wrapping the array
// in "data".
func attendanceRows(result any) ([]json.RawMessage, error) {
	raw, ok := result.(json.RawMessage)
	if !ok {
		if result == nil {
			return nil, nil
		}
		return nil, fmt.Errorf("unexpected attendance response of type %T", result)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '{' {
		var wrapped struct {
			Data []json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return nil, fmt.Errorf("decode attendance response: %w", err)
		}
		return wrapped.Data, nil
	}

	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("decode attendance response: %w", err)
	}
	return rows, nil
}

func groupAttendance(start, end string, rows []json.RawMessage) (*AttendanceReport, error) {
	byEmployee := make(map[string][]json.RawMessage)
	for _, row := range rows {
		var key struct {
			EmployeeCode any `json:"employeeCode"`
		}
		dec := json.NewDecoder(bytes.NewReader(row))
		dec.UseNumber()
		if err := dec.Decode(&key); err != nil {
			return nil, fmt.Errorf("decode attendance entry: %w", err)
		}
		code := jobboss2.FormatValue(key.EmployeeCode)
		byEmployee[code] = append(byEmployee[code], row)
	}

	codes := make([]string, 0, len(byEmployee))
	for code := range byEmployee {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	report := &AttendanceReport{
		StartDate:    start,
		EndDate:      end,
		TotalEntries: len(rows),
		Employees:    make([]EmployeeAttendance, 0, len(codes)),
	}
	for _, code := range codes {
		report.Employees = append(report.Employees, EmployeeAttendance{EmployeeCode: code, Entries: byEmployee[code]})
	}
	return report, nil
}
