package camera

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-terrain/common"
)

// Pose is the camera state the camera reads each frame.
// navigation.Controller satisfies it.
type Pose interface {
	// Eye returns the camera position.
	Eye() mgl32.Vec3
	// Front returns the unit view direction.
	Front() mgl32.Vec3
	// Up returns the up vector.
	Up() mgl32.Vec3
	// Center returns the planar center the terrain is sampled around.
	Center() mgl32.Vec2
}

type cameraImpl struct {
	mu *sync.Mutex

	fov    float32
	aspect float32
	near   float32
	far    float32

	eye    mgl32.Vec3
	center mgl32.Vec2

	viewMatrix                 mgl32.Mat4
	projectionMatrix           mgl32.Mat4
	viewProjectionMatrix       mgl32.Mat4
	mirrorViewMatrix           mgl32.Mat4
	mirrorViewProjectionMatrix mgl32.Mat4

	pose Pose
}

// Camera holds perspective settings and computes the view, projection and mirrored
// reflection matrices from an attached Pose each frame via Update().
type Camera interface {
	// Fov returns the field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// ViewMatrix returns the current view matrix (column-major).
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the current projection matrix (column-major).
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns the combined view-projection matrix.
	//
	// Returns:
	//   - mgl32.Mat4: projection * view
	ViewProjectionMatrix() mgl32.Mat4

	// MirrorViewMatrix returns the view matrix reflected in the water plane y = 0.
	// Eye and front are mirrored and the up vector points down.
	//
	// Returns:
	//   - mgl32.Mat4: the reflection view matrix
	MirrorViewMatrix() mgl32.Mat4

	// MirrorViewProjectionMatrix returns projection * mirror view.
	//
	// Returns:
	//   - mgl32.Mat4: the reflection view-projection matrix
	MirrorViewProjectionMatrix() mgl32.Mat4

	// Uniform packs the current matrices and position for GPU upload.
	//
	// Returns:
	//   - GPUCameraUniform: the uniform block
	Uniform() GPUCameraUniform

	// Pose returns the attached pose source, or nil.
	//
	// Returns:
	//   - Pose: the attached pose
	Pose() Pose

	// Update reads the pose and recomputes all matrices.
	// Should be called once per frame after the navigation update.
	// If no pose is attached, this method does nothing.
	Update()

	// SetFov sets the field of view in radians and recomputes matrices.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height) and recomputes matrices.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance and recomputes matrices.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)

	// SetPose attaches a pose source and recomputes matrices.
	//
	// Parameters:
	//   - pose: the pose to follow
	SetPose(pose Pose)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with a 45 degree field of view and planes at 0.1 and 100.
// A pose must be attached via SetPose or WithPose before the view follows anything.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:                         &sync.Mutex{},
		fov:                        mgl32.DegToRad(45),
		aspect:                     1.0,
		near:                       0.1,
		far:                        100.0,
		viewMatrix:                 mgl32.Ident4(),
		viewProjectionMatrix:       mgl32.Ident4(),
		mirrorViewMatrix:           mgl32.Ident4(),
		mirrorViewProjectionMatrix: mgl32.Ident4(),
	}
	for _, option := range options {
		option(c)
	}
	c.projectionMatrix = common.Perspective(c.fov, c.aspect, c.near, c.far)
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) MirrorViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mirrorViewMatrix
}

func (c *cameraImpl) MirrorViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mirrorViewProjectionMatrix
}

func (c *cameraImpl) Uniform() GPUCameraUniform {
	c.mu.Lock()
	defer c.mu.Unlock()
	return GPUCameraUniform{
		ViewProj:       c.viewProjectionMatrix,
		MirrorViewProj: c.mirrorViewProjectionMatrix,
		CameraPosition: c.eye,
		Center:         c.center,
	}
}

func (c *cameraImpl) Pose() Pose {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pose
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateMatrices()
}

func (c *cameraImpl) SetFov(fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateProjection()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateProjection()
}

func (c *cameraImpl) SetNear(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.near = near
	c.updateProjection()
}

func (c *cameraImpl) SetFar(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.far = far
	c.updateProjection()
}

func (c *cameraImpl) SetPose(pose Pose) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pose = pose
	c.updateMatrices()
}

// updateProjection rebuilds the projection and refreshes the combined matrices.
// Caller must hold the mutex.
func (c *cameraImpl) updateProjection() {
	c.projectionMatrix = common.Perspective(c.fov, c.aspect, c.near, c.far)
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
	c.mirrorViewProjectionMatrix = c.projectionMatrix.Mul4(c.mirrorViewMatrix)
}

// updateMatrices reads the pose and recalculates the view and mirror view matrices.
// This is a no-op when no pose is attached. Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	if c.pose == nil {
		return
	}

	eye, front, up := c.pose.Eye(), c.pose.Front(), c.pose.Up()
	c.eye = eye
	c.center = c.pose.Center()

	c.viewMatrix = common.LookAt(eye, front, up)
	c.mirrorViewMatrix = common.LookAt(common.MirrorY(eye), common.MirrorY(front), mgl32.Vec3{0, -1, 0})
	c.updateProjection()
}
