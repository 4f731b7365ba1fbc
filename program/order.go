package program

// Group-execution-order constants for the vertex stage. Feature code
// registers its atoms under one of these groups so independent
// features sequence correctly without coordinating. The coarse
// spacing leaves room to slot custom groups between the standard
// ones.
const (
	VSPreProcess  = 0
	VSTransform   = 100
	VSColor       = 200
	VSLighting    = 300
	VSTexturing   = 400
	VSFog         = 500
	VSPostProcess = 2000
)

// Group-execution-order constants for the fragment stage.
const (
	FSPreProcess  = 0
	FSColorBegin  = 100
	FSSampling    = 150
	FSTexturing   = 200
	FSColorEnd    = 300
	FSFog         = 400
	FSPostProcess = 500
	FSAlphaTest   = 1000
)
