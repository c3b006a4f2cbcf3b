package route

// constructPath walks parent links from end back to the start node and
// returns the nodes ordered start→end. A nil end yields an empty Path.
func constructPath(end *PathNode) Path {
	depth := 0
	for cur := end; cur != nil; cur = cur.parent {
		depth++
	}
	path := make(Path, depth)
	for cur := end; cur != nil; cur = cur.parent {
		depth--
		path[depth] = cur
	}

	return path
}
