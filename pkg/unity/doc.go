// Package unity drives the Unity editor in batch mode: it locates an
// installed editor, builds the command lines for compiling a project and
// for running its tests, runs them and collects compile errors and the
// test results file.
package unity
