package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/roster/internal/catalog"
	"github.com/leapstack-labs/roster/internal/cli/output"
	"github.com/leapstack-labs/roster/internal/csvio"
	"github.com/leapstack-labs/roster/internal/employee"
)

// User facing messages.
const (
	msgInvalidNumber   = "Invalid input. Please enter a number."
	msgInvalidChoice   = "Invalid choice. Please try again."
	msgExiting         = "Exiting..."
	msgImported        = "Data imported successfully, here is all the imported data from CSV file."
	msgAdded           = "Employee added successfully."
	msgCancelled       = "Addition cancelled."
	msgInvalidDate     = "Invalid date format. Please use the format " + employee.InputPattern + "."
	msgAddFailed       = "An error occurred while adding the employee. Please try again."
	msgFilterInvalid   = "Invalid choice. Returning to menu."
	msgNoEmployees     = "No employees found."
	msgExported        = "Filtered data exported successfully."
	promptChoice       = "Choose an option: "
	promptImportPath   = "Enter the file path: "
	promptExportPath   = "Enter the file path to save: "
	promptOverwrite    = "Do you want to overwrite? (yes/no): "
	ruleWidth          = 68
	defaultStrategyMsg = "Defaulting to manual reading."
)

// errStop ends the session without an error.
var errStop = errors.New("session stopped")

var mainMenu = []output.MenuItem{
	{Key: int(Exit), Label: "Exit"},
	{Key: int(Import), Label: "Select File, Import data"},
	{Key: int(Add), Label: "Add new Employee"},
	{Key: int(Filter), Label: "Filter Employees"},
	{Key: int(Export), Label: "Export filtered Employees"},
}

var strategyMenu = []output.MenuItem{
	{Key: 1, Label: "Manual"},
	{Key: 2, Label: "Library"},
}

var strategies = map[int]string{
	1: csvio.StrategyManual,
	2: csvio.StrategyLibrary,
}

var filterMenu = []output.MenuItem{
	{Key: int(catalog.ByName), Label: "Name"},
	{Key: int(catalog.ByID), Label: "ID"},
	{Key: int(catalog.ByBirthYear), Label: "Date of Birth (year)"},
	{Key: int(catalog.ByDepartment), Label: "Department"},
	{Key: int(catalog.All), Label: "All employees"},
}

var filterPrompts = map[catalog.FilterKind]string{
	catalog.ByName:       "Enter name pattern: ",
	catalog.ByID:         "Enter ID pattern: ",
	catalog.ByBirthYear:  "Enter year of birth: ",
	catalog.ByDepartment: "Enter Department: ",
	catalog.All:          "",
}

type action func(ctx context.Context) error

// Options configures a Controller.
type Options struct {
	Input        LineReader
	Renderer     *output.Renderer
	Logger       *slog.Logger
	Catalog      *catalog.Catalog // nil starts with an empty catalog
	ExportHeader bool             // write the column header line on export
}

// Controller owns the catalog for the length of one interactive session.
type Controller struct {
	in           LineReader
	r            *output.Renderer
	logger       *slog.Logger
	catalog      *catalog.Catalog
	exportHeader bool
	actions      map[Command]action
}

// New creates a controller.
func New(opts Options) *Controller {
	c := &Controller{
		in:           opts.Input,
		r:            opts.Renderer,
		logger:       opts.Logger,
		catalog:      opts.Catalog,
		exportHeader: opts.ExportHeader,
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	if c.catalog == nil {
		c.catalog = catalog.New()
	}
	c.actions = map[Command]action{
		Exit:   c.exit,
		Import: c.importData,
		Add:    c.addEmployee,
		Filter: c.printFiltered,
		Export: c.exportFiltered,
	}
	return c
}

// Catalog returns the session catalog.
func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

// Run shows the banner and serves the main menu until the user exits or the
// input ends. Only input failures other than end of input are returned.
func (c *Controller) Run(ctx context.Context) error {
	c.r.Banner()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := c.step(ctx)
		switch {
		case err == nil:
		case errors.Is(err, errStop):
			return nil
		case errors.Is(err, io.EOF):
			c.logger.Debug("input closed")
			c.r.Println("")
			c.r.Error(msgExiting)
			return nil
		default:
			return fmt.Errorf("failed to read input: %w", err)
		}
	}
}

func (c *Controller) step(ctx context.Context) error {
	c.r.Rule("=", ruleWidth)
	c.r.Menu("Menu:", mainMenu, c.r.Styles().Menu)
	line, err := c.in.ReadLine(c.r.PromptText(promptChoice))
	if err != nil {
		return err
	}

	cmd, err := ParseCommand(line)
	if err != nil {
		c.logger.Debug("menu choice rejected", "error", err)
		c.r.Error(msgInvalidNumber)
		return nil
	}
	c.r.Rule("-", ruleWidth)

	act, ok := c.actions[cmd]
	if !ok {
		c.logger.Debug("unknown command", "choice", int(cmd))
		c.r.Error(msgInvalidChoice)
		return nil
	}
	c.logger.Debug("dispatching command", "command", cmd.String())
	return act(ctx)
}

func (c *Controller) ask(prompt string) (string, error) {
	return c.in.ReadLine(c.r.PromptText(prompt))
}

func (c *Controller) exit(context.Context) error {
	c.r.Error(msgExiting)
	return errStop
}

func (c *Controller) importData(context.Context) error {
	c.r.Menu("Select CSV reading method:", strategyMenu, c.r.Styles().Prompt)
	line, err := c.ask(promptChoice)
	if err != nil {
		return err
	}

	strategy := csvio.StrategyManual
	if n, perr := parseChoice(line); perr != nil {
		c.r.Error("Invalid input. " + defaultStrategyMsg)
	} else if s, ok := strategies[n]; ok {
		strategy = s
	} else {
		c.r.Error("Invalid choice. " + defaultStrategyMsg)
	}
	reader, _ := csvio.NewReader(strategy)

	path, err := c.ask(promptImportPath)
	if err != nil {
		return err
	}
	path = strings.TrimSpace(path)

	records, err := csvio.ReadAll(path, reader)
	if err != nil {
		c.logger.Info("import failed", "path", path, "strategy", reader.Name(), "error", err)
		c.r.Error(err.Error())
		return nil
	}

	c.catalog.Replace(records)
	c.logger.Debug("imported employees", "path", path, "strategy", reader.Name(), "count", len(records))
	c.r.Success(msgImported)
	c.r.Employees(catalog.SortByBirthDate(c.catalog.All()))
	return nil
}

func (c *Controller) addEmployee(context.Context) error {
	id, err := c.ask("Enter ID: ")
	if err != nil {
		return err
	}
	id = strings.TrimSpace(id)

	overwrite := false
	if _, exists := c.catalog.Lookup(id); exists {
		c.r.Warning(fmt.Sprintf("Employee with ID %s already exists.", id))
		answer, err := c.ask(promptOverwrite)
		if err != nil {
			return err
		}
		if strings.ToLower(strings.TrimSpace(answer)) != "yes" {
			c.r.Error(msgCancelled)
			return nil
		}
		overwrite = true
	}

	var fields [4]string
	for i, prompt := range []string{
		"Enter Name: ",
		"Enter Date of Birth (" + employee.InputPattern + "): ",
		"Enter Address: ",
		"Enter Department: ",
	} {
		v, err := c.ask(prompt)
		if err != nil {
			return err
		}
		fields[i] = strings.TrimSpace(v)
	}

	rec, err := employee.Parse(id, fields[0], fields[1], fields[2], fields[3])
	if err != nil {
		c.logger.Info("employee rejected", "id", id, "error", err)
		var fe *employee.FormatError
		if errors.As(err, &fe) {
			c.r.Error(msgInvalidDate)
		} else {
			c.r.Error(msgAddFailed)
		}
		return nil
	}

	outcome := c.catalog.Add(rec, overwrite)
	c.logger.Debug("catalog updated", "id", rec.ID, "outcome", outcome.String())
	if outcome == catalog.Rejected {
		c.r.Error(msgAddFailed)
		return nil
	}
	c.r.Success(msgAdded)
	return nil
}

// selectEmployees runs the filter dialog and returns the matches sorted by
// birth date. Invalid choices are reported and yield an empty result.
func (c *Controller) selectEmployees() ([]employee.Employee, error) {
	none := []employee.Employee{}

	c.r.Menu("Filter by:", filterMenu, c.r.Styles().Prompt)
	line, err := c.ask(promptChoice)
	if err != nil {
		return nil, err
	}
	n, err := parseChoice(line)
	if err != nil {
		c.r.Error(msgInvalidNumber)
		return none, nil
	}

	kind := catalog.FilterKind(n)
	prompt, ok := filterPrompts[kind]
	if !ok {
		c.r.Error(msgFilterInvalid)
		return none, nil
	}

	var parameter string
	if kind.NeedsParameter() {
		if parameter, err = c.ask(prompt); err != nil {
			return nil, err
		}
	}

	f, err := catalog.ParseFilter(kind, parameter)
	if err != nil {
		c.logger.Info("filter rejected", "kind", kind.String(), "error", err)
		var ye *catalog.InvalidYearError
		if errors.As(err, &ye) {
			c.r.Error(msgInvalidNumber)
		} else {
			c.r.Error(msgFilterInvalid)
		}
		return none, nil
	}

	matches := c.catalog.Filter(f)
	c.logger.Debug("filter applied", "kind", kind.String(), "matches", len(matches))
	return catalog.SortByBirthDate(matches), nil
}

func (c *Controller) printFiltered(context.Context) error {
	records, err := c.selectEmployees()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		c.r.Println("")
		c.r.Info(msgNoEmployees)
		return nil
	}
	c.r.Employees(records)
	return nil
}

func (c *Controller) exportFiltered(context.Context) error {
	records, err := c.selectEmployees()
	if err != nil {
		return err
	}

	path, err := c.ask(promptExportPath)
	if err != nil {
		return err
	}
	path = strings.TrimSpace(path)

	if err := csvio.WriteAll(records, path, csvio.WriteOptions{Header: c.exportHeader}); err != nil {
		c.logger.Info("export failed", "path", path, "error", err)
		c.r.Error(err.Error())
		return nil
	}
	c.logger.Debug("exported employees", "path", path, "count", len(records), "header", c.exportHeader)
	c.r.Success(msgExported)
	return nil
}
