// Package script runs Starlark host scripts that scaffold projects through
// the create() builtin.
package script

import (
	"context"
	"fmt"
	"io"
	"sort"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"

	"github.com/gwa/cli/internal/output"
	"github.com/gwa/cli/internal/project"
)

// CreateFunc scaffolds a project from a loosely-typed parameter mapping.
// It is never interactive.
type CreateFunc func(ctx context.Context, params map[string]any) error

const contextKey = "context"

// fileOptions allows top-level for/if so scripts can loop over project
// names without wrapping everything in a function.
var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// Runner executes scripts with the gwa builtins predeclared.
type Runner struct {
	create CreateFunc
	out    io.Writer
}

// NewRunner creates a Runner. Script print() output goes to out.
func NewRunner(create CreateFunc, out io.Writer) *Runner {
	return &Runner{create: create, out: out}
}

// Predeclared returns the builtins visible to scripts.
func (r *Runner) Predeclared() starlark.StringDict {
	return starlark.StringDict{
		"struct":   starlark.NewBuiltin("struct", starlarkstruct.Make),
		"create":   starlark.NewBuiltin("create", r.builtinCreate),
		"defaults": starlark.NewBuiltin("defaults", builtinDefaults),
	}
}

// Run executes src (a string, []byte or nil to read filename). Cancelling
// ctx stops the script at the next Starlark step.
func (r *Runner) Run(ctx context.Context, filename string, src any) error {
	thread := &starlark.Thread{
		Name: "gwa",
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(r.out, msg)
		},
	}
	thread.SetLocal(contextKey, ctx)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			thread.Cancel(ctx.Err().Error())
		case <-done:
		}
	}()

	output.Debug("running script", "file", filename)

	if _, err := starlark.ExecFileOptions(fileOptions, thread, filename, src, r.Predeclared()); err != nil {
		return fmt.Errorf("script %s failed: %w", filename, err)
	}
	return nil
}

// builtinCreate implements create(params) and create(**kwargs). Keyword
// arguments override keys of a positional dict.
func (r *Runner) builtinCreate(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(args) > 1 {
		return nil, fmt.Errorf("%s: takes at most one positional dict, got %d arguments", b.Name(), len(args))
	}

	params := make(map[string]any)

	if len(args) == 1 {
		converted, err := fromStarlarkValue(args[0])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b.Name(), err)
		}
		m, ok := converted.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: positional argument must be a dict or struct, got %s", b.Name(), args[0].Type())
		}
		for k, v := range m {
			params[k] = v
		}
	}

	for _, kv := range kwargs {
		name := string(kv[0].(starlark.String))
		v, err := fromStarlarkValue(kv[1])
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", b.Name(), name, err)
		}
		params[name] = v
	}

	ctx, _ := thread.Local(contextKey).(context.Context)
	if ctx == nil {
		ctx = context.Background()
	}

	if err := r.create(ctx, params); err != nil {
		return nil, err
	}
	return starlark.True, nil
}

// builtinDefaults implements defaults(project_name), returning the record a
// fast-track create would produce.
func builtinDefaults(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "project_name", &name); err != nil {
		return nil, err
	}

	cfg, err := project.Resolve(project.Defaults(name))
	if err != nil {
		return nil, err
	}
	return toStarlarkValue(cfg.Values())
}

// toStarlarkValue converts a Go value to a Starlark value.
func toStarlarkValue(v any) (starlark.Value, error) {
	if v == nil {
		return starlark.None, nil
	}

	switch val := v.(type) {
	case bool:
		return starlark.Bool(val), nil
	case int:
		return starlark.MakeInt(val), nil
	case int64:
		return starlark.MakeInt64(val), nil
	case float64:
		return starlark.Float(val), nil
	case string:
		return starlark.String(val), nil
	case []any:
		list := make([]starlark.Value, len(val))
		for i, item := range val {
			sv, err := toStarlarkValue(item)
			if err != nil {
				return nil, err
			}
			list[i] = sv
		}
		return starlark.NewList(list), nil
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		dict := starlark.NewDict(len(val))
		for _, k := range keys {
			sv, err := toStarlarkValue(val[k])
			if err != nil {
				return nil, err
			}
			if err := dict.SetKey(starlark.String(k), sv); err != nil {
				return nil, err
			}
		}
		return dict, nil
	default:
		return nil, fmt.Errorf("unsupported type: %T", v)
	}
}

// fromStarlarkValue converts a Starlark value to a Go value. None becomes
// nil, which the resolver treats as absent.
func fromStarlarkValue(v starlark.Value) (any, error) {
	switch val := v.(type) {
	case starlark.NoneType:
		return nil, nil
	case starlark.Bool:
		return bool(val), nil
	case starlark.Int:
		i, ok := val.Int64()
		if !ok {
			return nil, fmt.Errorf("integer too large")
		}
		return i, nil
	case starlark.Float:
		return float64(val), nil
	case starlark.String:
		return string(val), nil
	case *starlark.List:
		list := make([]any, val.Len())
		for i := 0; i < val.Len(); i++ {
			item, err := fromStarlarkValue(val.Index(i))
			if err != nil {
				return nil, err
			}
			list[i] = item
		}
		return list, nil
	case *starlark.Dict:
		dict := make(map[string]any, val.Len())
		for _, item := range val.Items() {
			key, ok := item[0].(starlark.String)
			if !ok {
				return nil, fmt.Errorf("dict key must be string, got %s", item[0].Type())
			}
			value, err := fromStarlarkValue(item[1])
			if err != nil {
				return nil, err
			}
			dict[string(key)] = value
		}
		return dict, nil
	case *starlarkstruct.Struct:
		dict := make(map[string]any)
		for _, name := range val.AttrNames() {
			attr, err := val.Attr(name)
			if err != nil {
				continue
			}
			value, err := fromStarlarkValue(attr)
			if err != nil {
				return nil, err
			}
			dict[name] = value
		}
		return dict, nil
	default:
		return nil, fmt.Errorf("unsupported starlark type: %s", v.Type())
	}
}
