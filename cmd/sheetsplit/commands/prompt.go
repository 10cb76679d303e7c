package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sheetsplit/pkg/config"
)

// idPrompt names a document store identifier that can be asked for
// interactively when the config file and environment leave it blank.
type idPrompt struct {
	label string
	field func(*config.Config) *string
}

var (
	promptSource = idPrompt{
		label: "Source folder id",
		field: func(c *config.Config) *string { return &c.SourceFolderID },
	}
	promptDest = idPrompt{
		label: "Destination folder id",
		field: func(c *config.Config) *string { return &c.DestFolderID },
	}
	promptTranslation = idPrompt{
		label: "Translation sheet id",
		field: func(c *config.Config) *string { return &c.TranslationSheetID },
	}
)

// promptIDs fills in any missing identifiers by asking on the terminal.
// Identifiers already present in the config are left alone.
func promptIDs(cfg *config.Config, prompts ...idPrompt) error {
	hinted := false
	for _, p := range prompts {
		field := p.field(cfg)
		if *field != "" {
			continue
		}
		if !hinted {
			pterm.Info.Println("Hint: folder ids are in the URL of the folder in Google Drive.")
			hinted = true
		}
		value, err := pterm.DefaultInteractiveTextInput.Show(p.label)
		if err != nil {
			return errors.Errorf("reading %s: %w", strings.ToLower(p.label), err)
		}
		*field = strings.TrimSpace(value)
	}
	return nil
}
