package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/lerenn/issues-full/pkg/fs"
	"github.com/lerenn/issues-full/pkg/issue"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by Print.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Print writes v to w in the given format.
func Print(w io.Writer, format string, v any) error {
	switch format {
	case OutputJSON, "":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case OutputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedOutputFormat, format)
	}
}

// ReadPreviews decodes a JSON array of previews from path, or from stdin when path is "-".
func ReadPreviews(filesystem fs.FS, path string, stdin io.Reader) ([]issue.Preview, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = filesystem.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadPreviews, err)
	}

	var previews []issue.Preview
	if err := json.Unmarshal(data, &previews); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadPreviews, path, err)
	}
	return previews, nil
}

// ParseIssueID parses a numeric issue id argument.
func ParseIssueID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIssueID, arg)
	}
	return id, nil
}
