// File: doc.go
// Title: Text Value Conversion Package Documentation
// Description: Documents the conversion service used to turn option text into
//              typed handler arguments.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial conversion service

/*
Package convert converts option text into typed values.

The set of target types is closed: Int32, Int64, Float32, Float64, Char and
String. Every other type is reported as Invalid and can never be converted.
Conversion failures are returned as *ConversionError carrying the input and
the requested type, so callers can explain what went wrong.
*/
package convert
