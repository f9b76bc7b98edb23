package model

// Decorator adjusts a form model after it has been loaded from its source and
// before it is normalised, e.g. to relabel fields or attach metadata.
type Decorator interface {
	Decorate(*FormModel) error
}

// DecoratorFunc adapts a function into a Decorator.
type DecoratorFunc func(*FormModel) error

// Decorate calls the underlying function.
func (fn DecoratorFunc) Decorate(form *FormModel) error {
	return fn(form)
}
