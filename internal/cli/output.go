package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"dsmcp/internal/tools"
	"dsmcp/internal/ui"

	"github.com/alpkeskin/gotoon"
	"github.com/spf13/cobra"
)

type outputFormat string

const (
	formatJSON  outputFormat = "json"
	formatTOON  outputFormat = "toon"
	formatTable outputFormat = "table"
)

func validateFormat(f string) error {
	switch outputFormat(f) {
	case formatJSON, formatTOON, formatTable:
		return nil
	}
	return fmt.Errorf("unknown format %q: use json, toon or table", f)
}

type column struct {
	header string
	key    string
}

// listTable says which payload field holds the rows of a listing tool and
// which row fields become columns.
type listTable struct {
	field   string
	columns []column
}

var listTables = map[tools.Name]listTable{
	tools.ListComponents: {"components", []column{{"ID", "id"}, {"Category", "category"}, {"File", "filePath"}}},
	tools.ListStories:    {"stories", []column{{"Name", "name"}, {"File", "filePath"}}},
	tools.Search:         {"hits", []column{{"Kind", "kind"}, {"ID", "id"}, {"Name", "name"}, {"Match", "match"}, {"File", "filePath"}}},
	tools.ListDocs:       {"docs", []column{{"Name", "name"}, {"Title", "title"}, {"Description", "description"}}},
}

// call runs a tool and prints its payload in the selected format.
func (a *app) call(cmd *cobra.Command, name tools.Name, args map[string]any) error {
	res := a.router.Call(cmd.Context(), string(name), args)
	out := cmd.OutOrStdout()

	if res.IsError && outputFormat(a.format) == formatTable {
		p, _ := res.Payload.(tools.ErrorPayload)
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Error(p.Error, p.Hint))
		return errToolFailed
	}

	var err error
	switch outputFormat(a.format) {
	case formatJSON:
		_, err = fmt.Fprintln(out, res.Text())
	case formatTOON:
		err = writeTOON(out, res.Payload)
	default:
		err = writeTable(out, name, res.Payload)
	}
	if err != nil {
		return err
	}
	if res.IsError {
		return errToolFailed
	}
	return nil
}

func writeTOON(w io.Writer, payload any) error {
	generic, err := toGeneric(payload)
	if err != nil {
		return err
	}
	encoded, err := gotoon.Encode(generic)
	if err != nil {
		return fmt.Errorf("failed to encode TOON: %w", err)
	}
	_, err = fmt.Fprintln(w, encoded)
	return err
}

func writeTable(w io.Writer, name tools.Name, payload any) error {
	generic, err := toGeneric(payload)
	if err != nil {
		return err
	}
	fields, ok := generic.(map[string]any)
	if !ok {
		_, err = fmt.Fprintln(w, generic)
		return err
	}

	switch name {
	case tools.GetDoc:
		return writeDoc(w, fields)
	case tools.GetComponentSource:
		return writeSource(w, fields, "component", "id")
	case tools.GetStorySource:
		return writeSource(w, fields, "story", "name")
	}

	if spec, ok := listTables[name]; ok {
		items, _ := fields[spec.field].([]any)
		headers := make([]string, 0, len(spec.columns))
		for _, c := range spec.columns {
			headers = append(headers, c.header)
		}
		rows := make([][]string, 0, len(items))
		for _, item := range items {
			obj, _ := item.(map[string]any)
			row := make([]string, 0, len(spec.columns))
			for _, c := range spec.columns {
				row = append(row, cell(obj[c.key]))
			}
			rows = append(rows, row)
		}
		_, err = fmt.Fprintf(w, "%s\n%s\n", ui.Title(fmt.Sprintf("%d %s", len(items), spec.field)), ui.Table(headers, rows))
		return err
	}

	// Anything else is shown as field/value pairs.
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, cell(fields[k])})
	}
	_, err = fmt.Fprintln(w, ui.Table([]string{"Field", "Value"}, rows))
	return err
}

func writeDoc(w io.Writer, fields map[string]any) error {
	content, _ := fields["content"].(string)
	rendered, err := ui.Markdown(content, ui.DefaultWrap)
	if err != nil {
		return fmt.Errorf("failed to render doc: %w", err)
	}
	if doc, ok := fields["doc"].(map[string]any); ok {
		if title := cell(doc["title"]); title != "" {
			if _, err := fmt.Fprintln(w, ui.Title(title)); err != nil {
				return err
			}
		}
	}
	_, err = fmt.Fprint(w, rendered)
	return err
}

// writeSource prints the file path as a title followed by the raw source.
func writeSource(w io.Writer, fields map[string]any, entryField, keyField string) error {
	entry, _ := fields[entryField].(map[string]any)
	title := fmt.Sprintf("%s  %s", cell(entry[keyField]), cell(entry["filePath"]))
	_, err := fmt.Fprintf(w, "%s\n\n%s", ui.Title(title), cell(fields["source"]))
	return err
}

func cell(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}

// toGeneric turns a payload into plain maps and slices following its json tags.
func toGeneric(payload any) (any, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}
	var generic any
	if err := json.Unmarshal(b, &generic); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}
	return generic, nil
}
