package form

import "esgweb/internal/schema"

type selectorResolver interface {
	Resolve(state schema.SelectorState) (schema.SelectorState, error)
}
