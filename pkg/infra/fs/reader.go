package fs

import (
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/relpub/pkg/domain/types"
)

// ReadJSON loads the file at path and decodes its JSON content into v
func ReadJSON(path string, v any) error {
	if path == "" {
		return goerr.New("file path is empty", goerr.T(types.ErrTagRead))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return goerr.Wrap(err, "failed to read file",
			goerr.V("path", path),
			goerr.T(types.ErrTagRead),
		)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return goerr.Wrap(err, "failed to parse JSON",
			goerr.V("path", path),
			goerr.T(types.ErrTagParse),
		)
	}

	return nil
}
