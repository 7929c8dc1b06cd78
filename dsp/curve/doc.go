// Package curve provides the easing segments a color channel is built from.
//
// A [Segment] maps normalized time in [0,1] to a normalized progress value
// and carries the level the channel reaches when the segment completes.
//
// Available shapes:
//
//   - [ShapeRising]:   t^(3/intensity), slow start
//   - [ShapeSinking]:  1-(1-t)^(3/intensity), slow finish
//   - [ShapeLinear]:   t
//   - [ShapeInOutQuad], [ShapeInOutCubic], [ShapeInOutSine], [ShapeOutBounce]:
//     fixed easing curves that ignore intensity
//
// Any other [Shape] value is unknown. [Segment.Evaluate] treats it as a
// constant 0 and [Segment.EvaluateStrict] reports [ErrUnknownShape].
package curve
