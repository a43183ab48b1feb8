// Package kernel provides the value objects shared by every aggregate of the waybill
// lifecycle model.
//
// The package includes:
//   - TrackingNumber: the unique key of a waybill, as read by a barcode scanner
//   - Name: the unique key of zones and couriers
//   - Money: an exact amount in minor units, used for zone rates and settlement totals
//   - DateRange: an inclusive range of calendar dates used to select dispatches
//   - UUID: identifiers for records without a natural key (pickups)
//
// All values normalize their input (Unicode NFC, trimmed whitespace) so that two
// spellings of the same key that only differ in encoding compare equal.
package kernel
