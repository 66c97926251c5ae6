package spec

// https:domspec.whatwg.org/#nodelist
type NodeList []*Node

func (h *NodeList) Contains(n *Node) int {
	for i := range *h {
		if n == (*h)[i] {
			return i
		}
	}
	return -1
}

func (h *NodeList) Pop() *Node {
	if len(*h) == 0 {
		return nil
	}
	popped := (*h)[len((*h))-1]
	*h = (*h)[:len((*h))-1]
	return popped
}

// StackOfOpenElements is the builder's stack of containers still accepting
// children. The bottom entry is the document and is never popped.
type StackOfOpenElements struct {
	NodeList
}

func NewStackOfOpenElements(root *Node) *StackOfOpenElements {
	return &StackOfOpenElements{NodeList: NodeList{root}}
}

func (s *StackOfOpenElements) Push(n *Node) {
	s.NodeList = append(s.NodeList, n)
}

// CurrentNode is the container on top of the stack.
func (s *StackOfOpenElements) CurrentNode() *Node {
	return s.NodeList[len(s.NodeList)-1]
}

// PopUntil looks for the nearest open element named tagName and pops it
// together with everything opened after it. It reports false and leaves the
// stack alone when no such element is open.
func (s *StackOfOpenElements) PopUntil(tagName string) bool {
	for i := len(s.NodeList) - 1; i > 0; i-- {
		if s.NodeList[i].NodeName == tagName {
			s.NodeList = s.NodeList[:i]
			return true
		}
	}
	return false
}
