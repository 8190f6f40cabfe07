package template

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// RewriteManifest points package.json at the new project: the name field
// is replaced and any private marker is dropped. Edits are surgical so the
// file keeps its original indentation and key order. A template without a
// package.json is left alone.
func RewriteManifest(path, projectName string) error {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read package.json: %w", err)
	}

	doc := string(raw)
	if !gjson.Valid(doc) {
		return fmt.Errorf("package.json is not valid JSON")
	}

	doc, err = sjson.Set(doc, "name", projectName)
	if err != nil {
		return fmt.Errorf("failed to set package name: %w", err)
	}

	if gjson.Get(doc, "private").Exists() {
		doc, err = sjson.Delete(doc, "private")
		if err != nil {
			return fmt.Errorf("failed to drop private field: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(doc), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write package.json: %w", err)
	}
	return nil
}
