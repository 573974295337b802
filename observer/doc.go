// Package observer houses concrete implementations of the core.ContextStore.
// The interface itself (and the UserContext struct) live in the core package
// to centralize domain contracts. Keeping only implementations here prevents
// higher level packages (pipeline, façade) from depending on concrete storage.
//
// Add additional backends in sub-packages without changing any calling code –
// only the wiring layer needs to decide which implementation to instantiate.
package observer
