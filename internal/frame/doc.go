// Package frame provides the data model shared by every visualization run.
//
// The package defines the values a run emits and the rules for building them:
//
//   - [Dataset]: the working array of unique integers
//   - [Tag] and [Highlight]: per-index visual roles for one frame
//   - [Roles]: builder that rebuilds a full-length highlight every step
//   - [Frame]: immutable snapshot of (values, highlight, status)
//   - [Lang]: status message catalog
//
// # Example
//
//	data, _ := frame.Generate(rng, 15)
//	tags := frame.NewRoles(len(data)).
//		Range(len(data)-2, len(data), frame.TagSorted).
//		Mark(frame.TagCompare, 3, 4).
//		Highlight()
//	f := frame.New(frame.KindCompare, data, tags, frame.LangID.Format(frame.MsgBubbleCompare, data[3], data[4]))
//
// # Delay Law
//
// A speed setting s in [MinSpeed, MaxSpeed] maps to a per-step pause of
// 1050-s milliseconds; see [Delay].
package frame
