// Where: internal/usecase/mappingcreate/mappingcreate.go
// What: Interactive mapping construction.
// Why: Drive folder and component selection without knowing the prompt UI.
package mappingcreate

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/Newmi1988/environmental/internal/domain/config"
	"github.com/Newmi1988/environmental/internal/domain/mapping"
)

const (
	// FolderPrompt is shown when choosing target folders.
	FolderPrompt = "Select target folders:"
	// ComponentPromptFormat is shown per selected folder.
	ComponentPromptFormat = "Select components that should be included in folder '%s'. Components: "
)

var (
	errListerNotConfigured   = errors.New("folder lister is not configured")
	errSelectorNotConfigured = errors.New("selector is not configured")
)

// FolderLister lists candidate target folders below base.
type FolderLister interface {
	ListFolders(base string) ([]string, error)
}

// Selector asks the user to pick any number of options.
type Selector interface {
	MultiSelect(title string, options []string) ([]string, error)
}

// Request captures the inputs required to build a mapping.
type Request struct {
	Base string
}

// Workflow builds a Mapping from interactive selections.
type Workflow struct {
	Folders  FolderLister
	Selector Selector
	Logger   hclog.Logger
}

// NewWorkflow constructs a Workflow.
func NewWorkflow(folders FolderLister, selector Selector, logger hclog.Logger) Workflow {
	return Workflow{Folders: folders, Selector: selector, Logger: logger}
}

// Run asks for target folders, then for components per folder, in selection order.
// Any selection error aborts the whole construction.
func (w Workflow) Run(cfg config.Configuration, req Request) (mapping.Mapping, error) {
	if w.Folders == nil {
		return mapping.Mapping{}, errListerNotConfigured
	}
	if w.Selector == nil {
		return mapping.Mapping{}, errSelectorNotConfigured
	}

	candidates, err := w.Folders.ListFolders(req.Base)
	if err != nil {
		return mapping.Mapping{}, err
	}
	w.logger().Debug("listed folders", "base", req.Base, "count", len(candidates))

	folders, err := w.Selector.MultiSelect(FolderPrompt, candidates)
	if err != nil {
		return mapping.Mapping{}, fmt.Errorf("select folders: %w", err)
	}

	names := cfg.ListComponents()
	selections := make([]mapping.Selection, 0, len(folders))
	for _, folder := range folders {
		chosen, err := w.Selector.MultiSelect(fmt.Sprintf(ComponentPromptFormat, folder), names)
		if err != nil {
			return mapping.Mapping{}, fmt.Errorf("select components for %s: %w", folder, err)
		}
		w.logger().Debug("selected components", "folder", folder, "components", chosen)
		selections = append(selections, mapping.Selection{Folder: folder, Components: chosen})
	}
	return mapping.New(selections), nil
}

func (w Workflow) logger() hclog.Logger {
	if w.Logger == nil {
		return hclog.NewNullLogger()
	}
	return w.Logger
}
