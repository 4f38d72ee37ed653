package intent

import (
	"encoding/json"
	"fmt"
)

// Intent tags the model may return. The program never branches on them
// except to pick a display label.
const (
	AdjustPersonFTERel  = "adjust_person_fte_rel"
	AdjustPersonFTEAbs  = "adjust_person_fte_abs"
	MoveEmployeeUnit    = "move_employee_unit"
	CheckEmployeeExists = "check_employee_exists"
	GetEmployeeUnit     = "get_employee_unit"
	ListUnitEmployees   = "list_unit_employees"
	GetEmployeeFTEYear  = "get_employee_fte_year"
	Help                = "help"
	Unknown             = "unknown"
)

// All lists the closed set of intent tags in prompt order.
var All = []string{
	AdjustPersonFTERel,
	AdjustPersonFTEAbs,
	MoveEmployeeUnit,
	CheckEmployeeExists,
	GetEmployeeUnit,
	ListUnitEmployees,
	GetEmployeeFTEYear,
	Help,
	Unknown,
}

var labels = map[string]string{
	AdjustPersonFTERel:  "Stellenanteil anpassen",
	AdjustPersonFTEAbs:  "Stellenanteil setzen",
	MoveEmployeeUnit:    "Mitarbeiter versetzen",
	CheckEmployeeExists: "Mitarbeiter prüfen",
	GetEmployeeUnit:     "Station erfragen",
	ListUnitEmployees:   "Mitarbeitende auflisten",
	GetEmployeeFTEYear:  "Jahres-VK erfragen",
	Help:                "Hilfe",
}

// Label returns the German display label for an intent tag.
func Label(intent string) string {
	if l, ok := labels[intent]; ok {
		return l
	}
	return "Aktion ausführen"
}

// Command is the typed view of a model reply. Every slot is optional; a
// reply lacking a key leaves the corresponding pointer nil.
type Command struct {
	Intent                string   `json:"intent"`
	Fields                Fields   `json:"fields"`
	Confidence            *float64 `json:"confidence"`
	NeedsClarification    bool     `json:"needs_clarification"`
	ClarificationQuestion *string  `json:"clarification_question"`
	Notes                 *string  `json:"notes"`
}

// Fields holds the extracted slots.
type Fields struct {
	EmployeeName   *string  `json:"employee_name"`
	PersonalNumber *string  `json:"personal_number"`
	Month          *string  `json:"month"` // German month name, e.g. "Maerz"
	Year           *int     `json:"year"`
	DeltaFTE       *float64 `json:"delta_fte"`  // relative change, e.g. -0.5
	TargetFTE      *float64 `json:"target_fte"` // absolute target, e.g. 0.8
	Unit           *string  `json:"unit"`
	Site           *string  `json:"site"`
}

// Decode reads a recovered reply into a Command. It checks Go types only;
// schema conformance is Validate's job. Replies that are not objects fail,
// except null, which decodes to an empty Command.
func Decode(reply any) (*Command, error) {
	data, err := json.Marshal(reply)
	if err != nil {
		return nil, fmt.Errorf("decode command: %w", err)
	}
	var cmd Command
	if err := json.Unmarshal(data, &cmd); err != nil {
		return nil, fmt.Errorf("decode command: %w", err)
	}
	return &cmd, nil
}
