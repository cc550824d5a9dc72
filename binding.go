package escore

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
)

// Binding expressions let a theme drive component properties from late-bound
// data: each expression is evaluated against a caller-supplied variable bag
// and its result written back through SetProperty. Expressions are tengo
// source, e.g. `system.name + " (" + string(game.count) + ")"`.

// SetBindingExpression binds an expression to a property name.
func (c *Component) SetBindingExpression(property, expr string) {
	if c.bindings == nil {
		c.bindings = make(map[string]string)
	}
	c.bindings[property] = expr
}

// BindingExpressions returns the component's property-to-expression map.
// The returned map must not be mutated.
func (c *Component) BindingExpressions() map[string]string {
	return c.bindings
}

// ApplyBindings evaluates every binding expression against vars and writes
// each result into its property. A failing expression leaves its property
// untouched; evaluation continues and the failures are returned joined.
func (c *Component) ApplyBindings(vars map[string]any) error {
	var errs []error
	for property, expr := range c.bindings {
		value, err := evalBindingExpression(expr, vars)
		if err != nil {
			errs = append(errs, fmt.Errorf("escore: binding %q: %w", property, err))
			continue
		}
		if value.IsDefined() {
			c.SetProperty(property, value)
		}
	}
	return errors.Join(errs...)
}

// evalBindingExpression runs one tengo expression with the variable bag in
// scope and converts the result to a Property.
func evalBindingExpression(expr string, vars map[string]any) (Property, error) {
	script := tengo.NewScript([]byte("__out__ := (" + expr + ")"))
	for name, value := range vars {
		if err := script.Add(name, value); err != nil {
			return Property{}, fmt.Errorf("add variable %q: %w", name, err)
		}
	}
	compiled, err := script.Run()
	if err != nil {
		return Property{}, err
	}
	switch v := compiled.Get("__out__").Value().(type) {
	case int64:
		return FloatProperty(float32(v)), nil
	case float64:
		return FloatProperty(float32(v)), nil
	case bool:
		return BoolProperty(v), nil
	case string:
		return StringProperty(v), nil
	default:
		return Property{}, fmt.Errorf("unsupported result type %T", v)
	}
}
