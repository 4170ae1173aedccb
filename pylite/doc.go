// Package pylite implements a small tree-walking interpreter for an
// indentation-delimited, dynamically typed language with single
// inheritance and operator overloading via dunder methods.
package pylite
