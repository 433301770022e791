package path

import "github.com/go-gl/mathgl/mgl32"

// prerecordedPositions is the demo flythrough: a dive toward the valley floor, a climb over the
// ridge and a descent back before returning to the start altitude. x/z are planar center
// coordinates, y is eye altitude.
var prerecordedPositions = []mgl32.Vec3{
	{0.0, 20.0, 0.0},
	{-0.0764674, 13.036, -0.0100195},
	{-0.0956858, 9.94455, -0.0126155},
	{-0.126162, 5.91191, -0.0183634},
	{-0.127933, 5.70301, -0.0187716},
	{-0.154594, 3.2237, -0.0322502},
	{-0.136699, 12.6406, 0.010991},
	{-0.127946, 15.6198, 0.0254738},
	{-0.127946, 15.6198, 0.0254738},
	{-0.119916, 16.8863, 0.0794416},
	{-0.119916, 16.8863, 0.0794416},
	{-0.120363, 26.4823, 0.137978},
	{-0.120466, 28.677, 0.151354},
	{-0.120188, 33.7663, 0.1969},
	{-0.164935, 33.185, 0.300475},
	{-0.236531, 25.4521, 0.36964},
	{-0.237592, 25.378, 0.370527},
	{-0.316805, 13.5839, 0.349014},
	{-0.340688, 9.4208, 0.335942},
	{-0.35186, 5.48069, 0.330763},
	{-0.384819, 4.480028, 0.310678},
	{-0.387239, 4.418495, 0.308922},
	{-0.15, 60.0, 0.15},
	{0.0, 20.0, 0.0},
}

// prerecordedAngles holds (pitch, yaw, 0) in degrees, one per position sample.
var prerecordedAngles = []mgl32.Vec3{
	{2.80488, 171.884, 0},
	{-32.4414, 172.219, 0},
	{-32.0468, 172.617, 0},
	{-24.6968, 167.017, 0},
	{-24.6968, 167.017, 0},
	{-12.9468, 122.517, 0},
	{-38.3061, 110.153, 0},
	{-27.9061, 137.403, 0},
	{-25.7561, 140.503, 0},
	{4.22987, 197.66, 0},
	{21.8504, 264.972, 0},
	{33.2766, 269.562, 0},
	{33.2766, 269.562, 0},
	{21.2524, 269.546, 0},
	{-24.9279, 201.296, 0},
	{-17.228, 173.596, 0},
	{-17.228, 173.596, 0},
	{-30.0257, 150.34, 0},
	{-51.406, 155.128, 0},
	{-52.006, 155.128, 0},
	{5.0, 144.028, 0},
	{5.0, 144.028, 0},
	{2.80488, 171.884, 0},
	{2.80488, 171.884, 0},
}

// Prerecorded builds the fixed demo flythrough pair. Each call returns fresh curves.
//
// Returns:
//   - Pair: the prerecorded position and angle curves
func Prerecorded() Pair {
	return Pair{
		Position: NewCurve(WithPoints(prerecordedPositions...)),
		Angle:    NewCurve(WithPoints(prerecordedAngles...)),
	}
}
