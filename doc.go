/*
Package vec is the root of a container module centered on explicit
element-lifecycle control.

Package vector holds the growable array container, package mem the raw
storage buffer and allocation accounting it is built on, and package maybe
the optional-value type its accessors use. See the package documentation
of vector for the container's guarantees.
*/
package vec
