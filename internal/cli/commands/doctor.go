package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/roster/internal/catalog"
	"github.com/leapstack-labs/roster/internal/cli/output"
	"github.com/leapstack-labs/roster/internal/csvio"
	"github.com/leapstack-labs/roster/internal/employee"
)

// Health check statuses.
const (
	statusPass  = "pass"
	statusWarn  = "warn"
	statusError = "error"
	statusSkip  = "skip"
)

// DoctorOptions holds options for the doctor command.
type DoctorOptions struct {
	Format string // Output format: text, json
}

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand() *cobra.Command {
	opts := &DoctorOptions{}
	cmd := &cobra.Command{
		Use:   "doctor <file>",
		Short: "Check an employee CSV file before importing it",
		Long: `Analyze an employee CSV file for problems the interactive import would hit.

The doctor command reads the file with both the manual and the library
reader and reports:
- File summary (employees, departments, birth years)
- Reader checks with the first failing line
- Record checks (duplicate IDs, missing names or departments)
- Health score (0-100)`,
		Example: `  # Check a file
  roster doctor employees.csv

  # Output as JSON
  roster doctor employees.csv --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")

	return cmd
}

// DoctorOutput is the JSON output for the doctor command.
type DoctorOutput struct {
	File         string        `json:"file"`
	Summary      FileSummary   `json:"summary"`
	HealthChecks []HealthCheck `json:"health_checks"`
	Score        int           `json:"score"`
	IssueCount   int           `json:"issue_count"`
}

// FileSummary contains file-level statistics.
type FileSummary struct {
	Employees     int            `json:"employees"`
	Departments   map[string]int `json:"departments"`
	EarliestBirth int            `json:"earliest_birth_year,omitempty"`
	LatestBirth   int            `json:"latest_birth_year,omitempty"`
}

// HealthCheck represents a single health check result.
type HealthCheck struct {
	RuleID     string   `json:"rule_id"`
	Name       string   `json:"name"`
	Group      string   `json:"group"`
	Status     string   `json:"status"` // "pass", "warn", "error", "skip"
	IssueCount int      `json:"issue_count"`
	Details    []string `json:"details,omitempty"`
}

func runDoctor(cmd *cobra.Command, path string, opts *DoctorOptions) error {
	cc := NewCommandContext(cmd)

	out, err := diagnose(path)
	if err != nil {
		return err
	}
	cc.Logger.Debug("diagnosed file", "path", path, "score", out.Score, "issues", out.IssueCount)

	switch opts.Format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "", "text":
		renderDoctorText(cc.Renderer, out)
		return nil
	default:
		return fmt.Errorf("unknown format %q: expected text or json", opts.Format)
	}
}

// diagnose reads path with both strategies and checks the records. Only a
// missing file is an error; every other problem becomes a failed check.
func diagnose(path string) (*DoctorOutput, error) {
	manual, merr := csvio.ReadAll(path, csvio.ManualReader{})
	var nf *csvio.NotFoundError
	if errors.As(merr, &nf) {
		return nil, merr
	}
	library, lerr := csvio.ReadAll(path, csvio.LibraryReader{})

	checks := []HealthCheck{
		readerCheck("CSV01", "Manual reader", manual, merr),
		readerCheck("CSV02", "Library reader", library, lerr),
		agreementCheck(manual, merr, library, lerr),
	}

	records := manual
	if merr != nil {
		records = library
	}
	checks = append(checks, recordChecks(records, merr != nil && lerr != nil)...)

	sort.SliceStable(checks, func(i, j int) bool {
		return checks[i].Group < checks[j].Group
	})

	issues := 0
	for _, c := range checks {
		issues += c.IssueCount
	}

	return &DoctorOutput{
		File:         path,
		Summary:      summarize(records),
		HealthChecks: checks,
		Score:        calculateHealthScore(checks, len(records)),
		IssueCount:   issues,
	}, nil
}

func readerCheck(id, name string, records []employee.Employee, err error) HealthCheck {
	c := HealthCheck{RuleID: id, Name: name, Group: "file", Status: statusPass}
	if err != nil {
		c.Status = statusError
		c.IssueCount = 1
		c.Details = []string{err.Error()}
		return c
	}
	c.Details = []string{fmt.Sprintf("%d employee(s) read", len(records))}
	return c
}

func agreementCheck(manual []employee.Employee, merr error, library []employee.Employee, lerr error) HealthCheck {
	c := HealthCheck{RuleID: "CSV03", Name: "Readers agree", Group: "file", Status: statusPass}
	switch {
	case merr != nil || lerr != nil:
		c.Status = statusSkip
	case !slices.Equal(manual, library):
		// Quoted fields are only understood by the library reader.
		c.Status = statusWarn
		c.IssueCount = 1
		c.Details = []string{"manual and library readers decode the file differently; import with the library reader"}
	}
	return c
}

func recordChecks(records []employee.Employee, skipped bool) []HealthCheck {
	unique := HealthCheck{RuleID: "EMP01", Name: "Unique IDs", Group: "records", Status: statusPass}
	names := HealthCheck{RuleID: "EMP02", Name: "Names present", Group: "records", Status: statusPass}
	departments := HealthCheck{RuleID: "EMP03", Name: "Departments present", Group: "records", Status: statusPass}
	if skipped {
		unique.Status, names.Status, departments.Status = statusSkip, statusSkip, statusSkip
		return []HealthCheck{unique, names, departments}
	}

	seen := catalog.New()
	for _, e := range records {
		if err := seen.CheckUnique(e.ID); err != nil {
			unique.Details = append(unique.Details, err.Error())
		} else {
			seen.Add(e, false)
		}
		if strings.TrimSpace(e.Name) == "" {
			names.Details = append(names.Details, "employee "+e.ID+" has no name")
		}
		if strings.TrimSpace(e.Department) == "" {
			departments.Details = append(departments.Details, "employee "+e.ID+" has no department")
		}
	}

	setIssues(&unique, statusError)
	setIssues(&names, statusWarn)
	setIssues(&departments, statusWarn)
	return []HealthCheck{unique, names, departments}
}

func setIssues(c *HealthCheck, failed string) {
	c.IssueCount = len(c.Details)
	if c.IssueCount > 0 {
		c.Status = failed
	}
}

func summarize(records []employee.Employee) FileSummary {
	s := FileSummary{Employees: len(records), Departments: map[string]int{}}
	// Departments differing only in case are counted under the first spelling.
	spelling := map[string]string{}
	for i, e := range records {
		if dept := strings.TrimSpace(e.Department); dept != "" {
			key := cases.Fold().String(dept)
			if _, ok := spelling[key]; !ok {
				spelling[key] = dept
			}
			s.Departments[spelling[key]]++
		}
		year := e.BirthYear()
		if i == 0 || year < s.EarliestBirth {
			s.EarliestBirth = year
		}
		if i == 0 || year > s.LatestBirth {
			s.LatestBirth = year
		}
	}
	return s
}

// calculateHealthScore computes a health score from 0-100. Errors count
// double; larger files make each issue weigh less.
func calculateHealthScore(checks []HealthCheck, employeeCount int) int {
	if len(checks) == 0 {
		return 100
	}

	score := 100.0

	basePenalty := 5.0
	if employeeCount > 10 {
		basePenalty = 3.0
	}
	if employeeCount > 50 {
		basePenalty = 2.0
	}
	if employeeCount > 100 {
		basePenalty = 1.0
	}

	for _, check := range checks {
		switch check.Status {
		case statusError:
			score -= float64(check.IssueCount) * basePenalty * 2
		case statusWarn:
			score -= float64(check.IssueCount) * basePenalty
		}
	}

	return int(max(0, min(100, score)))
}

func renderDoctorText(r *output.Renderer, out *DoctorOutput) {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render("Employee File Health Report"))
	r.Println(styles.Muted.Render(strings.Repeat("=", 55)))
	r.Println("")

	r.Println(styles.Header2.Render("File Summary"))
	r.Printf("   File: %s\n", out.File)
	r.Printf("   Employees: %d", out.Summary.Employees)
	if out.Summary.Employees > 0 {
		r.Printf(" | Born: %d-%d", out.Summary.EarliestBirth, out.Summary.LatestBirth)
	}
	r.Println("")
	if len(out.Summary.Departments) > 0 {
		names := make([]string, 0, len(out.Summary.Departments))
		for name := range out.Summary.Departments {
			names = append(names, name)
		}
		sort.Strings(names)
		parts := make([]string, len(names))
		for i, name := range names {
			parts[i] = fmt.Sprintf("%s: %d", name, out.Summary.Departments[name])
		}
		r.Println("   Departments: " + strings.Join(parts, " | "))
	}
	r.Println("")

	r.Println(styles.Header2.Render("Health Checks"))
	r.Println("")

	currentGroup := ""
	titleCaser := cases.Title(language.English)
	for _, check := range out.HealthChecks {
		if check.Group != currentGroup {
			currentGroup = check.Group
			r.Println(styles.Bold.Render("   " + titleCaser.String(currentGroup)))
			r.Println(styles.Muted.Render("   " + strings.Repeat("-", 40)))
		}

		icon := styles.Success.Render("✓")
		switch check.Status {
		case statusWarn:
			icon = styles.Warning.Render("!")
		case statusError:
			icon = styles.Error.Render("✗")
		case statusSkip:
			icon = styles.Muted.Render("-")
		}

		status := fmt.Sprintf("%s %s: %s", icon, check.RuleID, check.Name)
		if check.IssueCount > 0 {
			status += fmt.Sprintf(" (%d issues)", check.IssueCount)
		}
		r.Println("   " + status)

		// Show first 3 details for issues
		for i, detail := range check.Details {
			if i >= 3 {
				r.Println(styles.Muted.Render(fmt.Sprintf("       ... and %d more", len(check.Details)-3)))
				break
			}
			r.Println(styles.Muted.Render("       - " + detail))
		}
	}
	r.Println("")

	r.Println(styles.Muted.Render(strings.Repeat("=", 55)))
	scoreStyle := styles.Success
	if out.Score < 70 {
		scoreStyle = styles.Warning
	}
	if out.Score < 50 {
		scoreStyle = styles.Error
	}
	r.Printf("   Health Score: %s\n", scoreStyle.Render(fmt.Sprintf("%d/100", out.Score)))
	r.Println("")
}
