package domain

import (
	"regexp"

	"regren.dev/pkg/regren/internal/domain/pattern"
	m "regren.dev/pkg/regren/internal/model"
)

// extensionPattern matches a trailing extension: a dot followed by word
// characters up to the end of the name. A trailing dot is an empty extension.
var extensionPattern = regexp.MustCompile(`\.[\p{L}\p{N}_]*$`)

// SplitExtension separates name into base and extension. Names without a
// matching extension return an empty ext.
func SplitExtension(name string) (base, ext string) {
	loc := extensionPattern.FindStringIndex(name)
	if loc == nil {
		return name, ""
	}

	return name[:loc[0]], name[loc[0]:]
}

// Planner computes rename plans for scanned entries.
type Planner struct {
	pattern         *pattern.Pattern
	replacement     string
	ignoreExtension bool
	substitute      bool
}

// NewPlanner derives the effective replacement from cfg once.
func NewPlanner(cfg m.RunConfig, p *pattern.Pattern) Planner {
	return Planner{
		pattern:         p,
		replacement:     cfg.EffectiveReplacement(),
		ignoreExtension: cfg.IgnoreExtension,
		substitute:      !cfg.DisplayOnly(),
	}
}

// Replacement returns the text substituted for each match.
func (pl Planner) Replacement() string {
	return pl.replacement
}

// Plan computes the old/new name pair for entry. Folders are never split and
// the extension is never passed through the pattern. In display-only mode the
// plan keeps the old name.
func (pl Planner) Plan(entry m.Entry) m.RenamePlan {
	plan := m.RenamePlan{
		OldName:     entry.Name,
		NewName:     entry.Name,
		Base:        entry.Name,
		IsDirectory: entry.IsFolder(),
	}

	if pl.ignoreExtension && !entry.IsFolder() {
		plan.Base, plan.Extension = SplitExtension(entry.Name)
	}

	if !pl.substitute {
		return plan
	}

	plan.NewName = pl.pattern.Replace(plan.Base, pl.replacement) + plan.Extension
	plan.WillChange = plan.NewName != plan.OldName

	return plan
}
