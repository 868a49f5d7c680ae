// Package route holds the toy waypoint model and the proximity annotator
// that marks nodes near detected stop signs.
//
// There is no graph and no pathfinding here: a route is a flat list of
// nodes, and annotation is a linear scan comparing each node against each
// detection's bounding-box origin with a fixed Euclidean threshold. Pixel
// space and node space are compared directly through an identity Aligner;
// substituting a real alignment transform is the intended extension point.
package route
