// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires the HTTP routes using Go 1.22+ method-and-pattern
routing on the standard ServeMux. All application routes go through the
logging middleware.
*/
package router
