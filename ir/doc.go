// Package ir provides the intermediate representation for configuration
// values fed to the encoder.
//
// A value is one of six kinds: null, bool, number (int64 or float64),
// string, array, or object. Objects keep their entries in the parallel
// Fields/Values slices, so insertion order survives from the producing
// configuration layer all the way to the emitted text. The IR carries no
// position information; it is purely semantic.
//
// Use the constructor functions to build nodes:
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "layout", Val: ir.FromString("us")},
//	})
//	num := ir.FromInt(42)
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// Nodes are not safe for concurrent mutation; clone them per goroutine
// if needed. Encoding never mutates its input.
package ir
