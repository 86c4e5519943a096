package input

import (
	"fmt"
	"strings"

	apperrors "github.com/trigg3rX/algo-cli/pkg/errors"
)

// Option is one value-taking member of an exclusive flag group.
type Option struct {
	Short    string
	Long     string
	Type     DataType
	FromFile bool
	Usage    string
}

func (o Option) names() []string {
	return []string{"-" + o.Short, "--" + o.Long}
}

// InputOptions are the eight input-selecting flags of the run command.
var InputOptions = []Option{
	{Short: "d", Long: "data", Type: DataAuto, Usage: "If the data parses as JSON, assume JSON, else if the data is valid UTF-8, assume text, else assume binary"},
	{Short: "D", Long: "data-file", Type: DataAuto, FromFile: true, Usage: "Same as --data, but the input data is read from a file"},
	{Short: "j", Long: "json", Type: DataJSON, Usage: "Algorithm input data as JSON (application/json)"},
	{Short: "J", Long: "json-file", Type: DataJSON, FromFile: true, Usage: "Same as --json, but the input data is read from a file"},
	{Short: "t", Long: "text", Type: DataText, Usage: "Algorithm input data as text (text/plain)"},
	{Short: "T", Long: "text-file", Type: DataText, FromFile: true, Usage: "Same as --text, but the input data is read from a file"},
	{Short: "b", Long: "binary", Type: DataBinary, Usage: "Algorithm input data as binary (application/octet-stream)"},
	{Short: "B", Long: "binary-file", Type: DataBinary, FromFile: true, Usage: "Same as --binary, but the input data is read from a file"},
}

// FlagGroup extracts a set of mutually exclusive, value-taking flags from an
// argument list ahead of general flag parsing.
type FlagGroup struct {
	byName map[string]Option
}

func NewFlagGroup(options []Option) *FlagGroup {
	g := &FlagGroup{byName: make(map[string]Option, len(options)*2)}
	for _, opt := range options {
		for _, name := range opt.names() {
			g.byName[name] = opt
		}
	}
	return g
}

// NewInputFlagGroup returns the group of the eight input-selecting flags.
func NewInputFlagGroup() *FlagGroup {
	return NewFlagGroup(InputOptions)
}

// Selection is one matched flag with its value.
type Selection struct {
	Flag   string
	Option Option
	Value  string
}

// Source returns where the selected data comes from.
func (s Selection) Source() Source {
	if s.Option.FromFile {
		return FileSource(s.Value)
	}
	return LiteralSource(s.Value)
}

// ScanResult holds the matched flags and the arguments left for the general
// parser, in their original order.
type ScanResult struct {
	Selections []Selection
	Rest       []string
}

// Scan removes every member of the group from args together with its value.
// "--long value", "--long=value" and "-s value" are recognized anywhere in
// args, including after "--". A member without a value is a usage error.
func (g *FlagGroup) Scan(args []string) (*ScanResult, error) {
	result := &ScanResult{Rest: make([]string, 0, len(args))}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "--") {
			if name, value, ok := strings.Cut(arg, "="); ok {
				if opt, found := g.byName[name]; found {
					result.Selections = append(result.Selections, Selection{Flag: name, Option: opt, Value: value})
					continue
				}
			}
		}

		opt, found := g.byName[arg]
		if !found {
			result.Rest = append(result.Rest, arg)
			continue
		}
		if i+1 >= len(args) {
			return nil, apperrors.NewUsageError(fmt.Sprintf(apperrors.ErrMissingInputValue, arg), "")
		}
		i++
		result.Selections = append(result.Selections, Selection{Flag: arg, Option: opt, Value: args[i]})
	}

	return result, nil
}

// One returns the single selection, failing when none or several were given.
func (r *ScanResult) One() (Selection, error) {
	switch len(r.Selections) {
	case 0:
		return Selection{}, apperrors.NewUsageError(apperrors.ErrNoInputSource, "")
	case 1:
		return r.Selections[0], nil
	default:
		return Selection{}, apperrors.NewUsageError(apperrors.ErrMultipleInputSources, "")
	}
}

// Resolve reads and classifies the selected data.
func Resolve(sel Selection, r *Reader) (Payload, error) {
	data, err := r.ReadAll(sel.Source())
	if err != nil {
		return nil, err
	}
	return Classify(sel.Option.Type, data)
}
