// Package f7 builds Framework7 markup trees for server-side reactive
// web apps.
//
// Users import this single package for the complete public API: node
// construction, page and layout assembly, navigation chrome, form
// inputs, and app configuration. Every constructor is a pure,
// stateless builder emitting the class names and data attributes the
// toolkit JS expects. State, events, and DOM updates belong to the
// hosting reactive framework; animation belongs to the toolkit.
package f7
