package geometry

import (
	"github.com/fransixpaohui/RayTracing/pkg/core"
	"github.com/fransixpaohui/RayTracing/pkg/material"
)

// Leaf threshold: if we have this many or fewer objects, store them in a leaf node
const leafThreshold = 8

// BVHNode is a node of a bounding volume hierarchy. Leaves hold their objects
// directly; internal nodes hold two children.
type BVHNode struct {
	bbox    core.AABB
	Left    *BVHNode
	Right   *BVHNode
	Objects []Hittable // Objects for leaf nodes (nil for internal nodes)
}

// NewBVH builds a hierarchy over objects. The input slice is not modified.
func NewBVH(objects []Hittable) *BVHNode {
	if len(objects) == 0 {
		return &BVHNode{bbox: core.EmptyAABB, Objects: []Hittable{}}
	}

	// Copy so concurrent builders never share a backing array
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	return buildBVH(objectsCopy)
}

// NewBVHFromList builds a hierarchy over the members of list
func NewBVHFromList(list *HittableList) *BVHNode {
	return NewBVH(list.Objects())
}

// buildBVH recursively builds the BVH using median splitting along the longest axis
func buildBVH(objects []Hittable) *BVHNode {
	bbox := core.EmptyAABB
	for _, object := range objects {
		bbox = core.NewAABBUnion(bbox, object.BoundingBox())
	}

	// Base case: few objects - create leaf node with all of them
	if len(objects) <= leafThreshold {
		return &BVHNode{bbox: bbox, Objects: objects}
	}

	axis := bbox.LongestAxis()
	extent := bbox.AxisInterval(axis)
	if extent.Size() <= 0 {
		return &BVHNode{bbox: bbox, Objects: objects}
	}

	splitPos := (extent.Min + extent.Max) * 0.5
	leftObjects, rightObjects := partitionObjects(objects, axis, splitPos)

	// Ensure we don't create empty partitions
	if len(leftObjects) == 0 || len(rightObjects) == 0 {
		return &BVHNode{bbox: bbox, Objects: objects}
	}

	return &BVHNode{
		bbox:  bbox,
		Left:  buildBVH(leftObjects),
		Right: buildBVH(rightObjects),
	}
}

// partitionObjects splits objects by the center of their bounding box along axis
func partitionObjects(objects []Hittable, axis int, splitPos float64) ([]Hittable, []Hittable) {
	var left, right []Hittable
	for _, object := range objects {
		if object.BoundingBox().Center().Axis(axis) < splitPos {
			left = append(left, object)
		} else {
			right = append(right, object)
		}
	}
	return left, right
}

// Hit tests if a ray intersects any object in the hierarchy, returning the closest
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	if !n.bbox.Hit(ray, rayT) {
		return nil, false
	}

	var closest *material.HitRecord
	closestSoFar := rayT.Max

	// Leaf node: linear search
	if n.Objects != nil {
		for _, object := range n.Objects {
			if hit, ok := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); ok {
				closestSoFar = hit.T
				closest = hit
			}
		}
		return closest, closest != nil
	}

	if hit, ok := n.Left.Hit(ray, rayT); ok {
		closestSoFar = hit.T
		closest = hit
	}
	if hit, ok := n.Right.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); ok {
		closest = hit
	}

	return closest, closest != nil
}

// BoundingBox returns the box enclosing every object in the hierarchy
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}
