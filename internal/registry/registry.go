// Package registry holds the per-language file layouts and toolchain recipes,
// and the executables behind each editor.
package registry

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/st3v3nmw/cfc/internal/problem"
)

// Step is one external process invocation. Args[0] is the executable.
// Args may contain the placeholders {file}, {stem} and {dir}.
type Step struct {
	Name string
	Args []string
}

// Expand substitutes the target's paths into the step's arguments.
func (s Step) Expand(t Target) Step {
	replacer := strings.NewReplacer("{file}", t.Source, "{stem}", t.Stem, "{dir}", t.Dir)

	args := make([]string, len(s.Args))
	for i, arg := range s.Args {
		args[i] = replacer.Replace(arg)
	}

	return Step{Name: s.Name, Args: args}
}

func (s Step) String() string {
	return strings.Join(s.Args, " ")
}

// Layout describes where a problem's source lives.
// A layout with a ProjectPrefix is a generated project rather than a bare file.
type Layout struct {
	Extension string

	ProjectPrefix string
	ProjectSource string
}

// Recipe is everything needed to create, build and run a solution in one language.
type Recipe struct {
	Language Language
	Layout   Layout

	// Scaffold generates a project skeleton. Only project layouts use it.
	Scaffold []Step
	// Build runs before Run, in order. Empty for interpreted languages.
	Build []Step
	Run   Step
}

// Target is the set of paths for one problem, relative to the working directory.
type Target struct {
	// Stem is the problem ID.
	Stem string
	// Root exists once the problem has been created: the file, or the project directory.
	Root string
	// Source is the file that receives the template and is opened in the editor.
	Source string
	// Dir is the project directory, empty for file layouts.
	Dir string
}

// IsProject reports whether the language needs a generated project.
func (r *Recipe) IsProject() bool {
	return r.Layout.ProjectPrefix != ""
}

// Target computes the paths for the given problem.
func (r *Recipe) Target(id problem.ID) Target {
	if r.IsProject() {
		dir := r.Layout.ProjectPrefix + id.Lower()
		return Target{
			Stem:   id.String(),
			Root:   dir,
			Source: filepath.Join(dir, r.Layout.ProjectSource),
			Dir:    dir,
		}
	}

	file := id.String() + r.Layout.Extension
	return Target{Stem: id.String(), Root: file, Source: file}
}

// Steps returns the build steps followed by the run step, expanded for t.
func (r *Recipe) Steps(t Target) []Step {
	steps := make([]Step, 0, len(r.Build)+1)
	for _, step := range r.Build {
		steps = append(steps, step.Expand(t))
	}

	return append(steps, r.Run.Expand(t))
}

// Override replaces parts of a recipe. Nil fields are left as they are.
type Override struct {
	Scaffold [][]string
	Build    [][]string
	Run      []string
}

// Registry maps languages to recipes and editors to executables.
type Registry struct {
	recipes     map[Language]*Recipe
	executables map[Editor]string
}

// Default returns a registry with the built-in recipes and editor executables.
func Default() *Registry {
	r := &Registry{
		recipes:     make(map[Language]*Recipe),
		executables: make(map[Editor]string),
	}

	r.register(&Recipe{
		Language: Pypy,
		Layout:   Layout{Extension: ".py"},
		Run:      Step{Name: "run", Args: []string{"pypy3", "{file}"}},
	})
	r.register(&Recipe{
		Language: Python,
		Layout:   Layout{Extension: ".py"},
		Run:      Step{Name: "run", Args: []string{"python3", "{file}"}},
	})
	r.register(&Recipe{
		Language: Cpp,
		Layout:   Layout{Extension: ".cpp"},
		Build: []Step{
			{Name: "compile", Args: []string{"g++", "-std=c++17", "-O2", "-o", "{stem}", "{file}"}},
		},
		Run: Step{Name: "run", Args: []string{"./{stem}"}},
	})
	r.register(&Recipe{
		Language: C,
		Layout:   Layout{Extension: ".c"},
		Build: []Step{
			{Name: "compile", Args: []string{"gcc", "-O2", "-o", "{stem}", "{file}", "-lm"}},
		},
		Run: Step{Name: "run", Args: []string{"./{stem}"}},
	})
	r.register(&Recipe{
		Language: Java,
		Layout:   Layout{Extension: ".java"},
		Run:      Step{Name: "run", Args: []string{"java", "{file}"}},
	})
	r.register(&Recipe{
		Language: Rust,
		Layout:   Layout{ProjectPrefix: "cf_", ProjectSource: filepath.Join("src", "main.rs")},
		Scaffold: []Step{
			{Name: "scaffold", Args: []string{"cargo", "new", "--vcs", "none", "--name", "{dir}", "{dir}"}},
		},
		Build: []Step{
			{Name: "compile", Args: []string{"cargo", "build", "--release", "--quiet", "--manifest-path", "{dir}/Cargo.toml"}},
		},
		Run: Step{Name: "run", Args: []string{"{dir}/target/release/{dir}"}},
	})

	for i, names := range editorNames {
		r.executables[Editor(i)] = names.executable
	}

	return r
}

func (r *Registry) register(recipe *Recipe) {
	if len(recipe.Run.Args) == 0 {
		panic(fmt.Sprintf("cannot register %s without a run step", recipe.Language))
	}

	r.recipes[recipe.Language] = recipe
}

// Recipe returns the recipe for a language.
func (r *Registry) Recipe(language Language) (*Recipe, error) {
	recipe, exists := r.recipes[language]
	if !exists {
		return nil, fmt.Errorf("no recipe for %s", language)
	}

	return recipe, nil
}

// Executable returns the program that opens files in the given editor.
func (r *Registry) Executable(editor Editor) (string, error) {
	executable, exists := r.executables[editor]
	if !exists {
		return "", fmt.Errorf("no executable for %s", editor)
	}

	return executable, nil
}

// Override replaces the given parts of a language's recipe.
func (r *Registry) Override(language Language, o Override) error {
	recipe, err := r.Recipe(language)
	if err != nil {
		return err
	}

	updated := *recipe
	if o.Scaffold != nil {
		if !updated.IsProject() {
			return fmt.Errorf("%s does not use a project, it cannot be scaffolded", language)
		}
		updated.Scaffold = toSteps("scaffold", o.Scaffold)
	}

	if o.Build != nil {
		updated.Build = toSteps("compile", o.Build)
	}

	if o.Run != nil {
		if len(o.Run) == 0 {
			return fmt.Errorf("run command for %s cannot be empty", language)
		}
		updated.Run = Step{Name: "run", Args: o.Run}
	}

	r.recipes[language] = &updated
	return nil
}

// SetExecutable changes the program used to open the given editor.
func (r *Registry) SetExecutable(editor Editor, executable string) error {
	if !editor.Valid() {
		return fmt.Errorf("invalid editor %d", int(editor))
	}

	if executable == "" {
		return fmt.Errorf("executable for %s cannot be empty", editor)
	}

	r.executables[editor] = executable
	return nil
}

func toSteps(name string, commands [][]string) []Step {
	steps := make([]Step, 0, len(commands))
	for i, args := range commands {
		if len(args) == 0 {
			continue
		}

		stepName := name
		if len(commands) > 1 {
			stepName = fmt.Sprintf("%s %d/%d", name, i+1, len(commands))
		}
		steps = append(steps, Step{Name: stepName, Args: args})
	}

	return steps
}
