package wallpaper

import (
	"log/slog"
	"strconv"
	"strings"
)

const headerBlock = `# ===== GENERATED BY HPG =====
# visit https://github.com/hpgen/hpg for details.
# ============================
#
`

// Assignment is one monitor's rendered wallpaper: the resolved image path and
// the fragment hyprpaper consumes (fit token plus path).
type Assignment struct {
	Output   string
	Path     string
	Fragment string
}

// Plan is a compiled profile: assignments in declaration order and the
// distinct preload paths in first-seen order.
type Plan struct {
	Assignments []Assignment
	Preloads    []string
}

// Compile validates the profile and derives its plan. Fit-mode conflicts are
// reported as warnings and fall back to cover; a missing wallpaper file is
// fatal and yields no plan.
func Compile(p Profile, logger *slog.Logger) (*Plan, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}

	plan := &Plan{
		Assignments: make([]Assignment, 0, len(p.Monitors)),
		Preloads:    make([]string, 0, len(p.Monitors)),
	}
	seen := make(map[string]struct{}, len(p.Monitors))

	for _, m := range p.Monitors {
		if m.FitConflict() {
			logger.Warn("contain and tile are mutually exclusive, falling back to cover", "output", m.Output)
		}
		resolved := Resolve(m, p.Prefix)
		plan.Assignments = append(plan.Assignments, Assignment{
			Output:   m.Output,
			Path:     resolved,
			Fragment: m.Fit().Token() + resolved,
		})
		if _, ok := seen[resolved]; !ok {
			seen[resolved] = struct{}{}
			plan.Preloads = append(plan.Preloads, resolved)
		}
	}
	return plan, nil
}

// Text renders the plan into canonical hyprpaper config text. Rendering the
// same plan twice yields byte-identical output.
func (pl *Plan) Text(ipc, splash bool) string {
	var b strings.Builder
	b.WriteString(headerBlock)
	b.WriteString("ipc = " + strconv.FormatBool(ipc) + "\n")
	b.WriteString("splash = " + strconv.FormatBool(splash) + "\n")
	for _, path := range pl.Preloads {
		b.WriteString("preload = " + path + "\n")
	}
	for _, a := range pl.Assignments {
		b.WriteString("wallpaper = " + a.Output + "," + a.Fragment + "\n")
	}
	return b.String()
}

// Render validates and renders the profile in one step.
func Render(p Profile, logger *slog.Logger) (string, error) {
	plan, err := Compile(p, logger)
	if err != nil {
		return "", err
	}
	return plan.Text(p.IPC, p.Splash), nil
}
