// Package editplan loads a YAML batch of schematic edits and applies
// them across many files in one pass. It adds no new core semantics:
// every operation here is a direct call into sexpedit/kicadsch.
package editplan

import (
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/kicadtools/sexpedit/kicadsch"
	"github.com/kicadtools/sexpedit/sexpedit"
)

// PropertyChange mirrors kicadsch.PropertyEdit in YAML-friendly form.
type PropertyChange struct {
	Value   *string `yaml:"value,omitempty"`
	Visible *bool   `yaml:"visible,omitempty"`
	Remove  bool    `yaml:"remove,omitempty"`
}

// ComponentUpdate targets one symbol by reference designator.
type ComponentUpdate struct {
	Reference  string                    `yaml:"reference"`
	Properties map[string]PropertyChange `yaml:"properties"`
}

// NetRename is one rename_net call.
type NetRename struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// FileTasks groups every edit targeting a single .kicad_sch file.
type FileTasks struct {
	Path           string             `yaml:"path"`
	Components     []ComponentUpdate  `yaml:"components,omitempty"`
	Renames        []NetRename        `yaml:"renames,omitempty"`
	SchematicInfo  map[string]string  `yaml:"schematic_info,omitempty"`
}

// Plan is the top-level YAML document shape for "apply-plan".
type Plan struct {
	Files []FileTasks `yaml:"files"`
}

// Load reads and parses a plan file. Absence of any key section in a
// FileTasks entry (Components, Renames, SchematicInfo) is valid, that
// file simply has nothing queued for it.
func Load(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, err
	}
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Plan{}, err
	}
	return p, nil
}

// FileResult tallies what Apply changed in one file.
type FileResult struct {
	Path                    string
	ComponentsAffected      int
	LabelsRenamed           int
	SchematicFieldsAffected int
}

// Apply runs every FileTasks entry in plan against its file, each as
// its own load/edit/commit cycle. A failure partway through a file
// leaves that file untouched (sexpedit.Document.Commit writes nothing
// until every queued edit has been accepted) but does not roll back
// files already committed earlier in the plan.
func Apply(plan Plan, logger logrus.FieldLogger) ([]FileResult, error) {
	results := make([]FileResult, 0, len(plan.Files))
	for _, ft := range plan.Files {
		doc, err := sexpedit.Load(ft.Path)
		if err != nil {
			return results, err
		}
		root := doc.Root()
		version := kicadsch.DetectVersion(root)

		res := FileResult{Path: ft.Path}
		for _, cu := range ft.Components {
			edits := make(map[string]kicadsch.PropertyEdit, len(cu.Properties))
			for name, ch := range cu.Properties {
				edits[name] = kicadsch.PropertyEdit{Value: ch.Value, Visible: ch.Visible, Remove: ch.Remove}
			}
			n, err := kicadsch.UpdateComponent(doc, root, cu.Reference, edits, version)
			if err != nil {
				return results, err
			}
			res.ComponentsAffected += n
		}
		for _, r := range ft.Renames {
			n, err := kicadsch.RenameNet(doc, root, r.From, r.To)
			if err != nil {
				return results, err
			}
			res.LabelsRenamed += n
		}
		if len(ft.SchematicInfo) > 0 {
			n, err := kicadsch.UpdateSchematicInfo(doc, root, ft.SchematicInfo)
			if err != nil {
				return results, err
			}
			res.SchematicFieldsAffected += n
		}

		if logger != nil {
			logger.WithField("path", ft.Path).
				WithField("components", res.ComponentsAffected).
				WithField("renamed", res.LabelsRenamed).
				Info("applying edit plan")
		}

		if err := doc.Commit(ft.Path); err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
