package listing

// Selection 有序去重的 id 集合，对应后台列表的多选框
type Selection[K comparable] struct {
	order []K
	index map[K]struct{}
}

// NewSelection 按首次出现的顺序去重
func NewSelection[K comparable](ids ...K) *Selection[K] {
	s := &Selection[K]{index: make(map[K]struct{}, len(ids))}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s *Selection[K]) Has(id K) bool {
	_, ok := s.index[id]
	return ok
}

// Add 已存在时不做任何事
func (s *Selection[K]) Add(id K) {
	if s.Has(id) {
		return
	}
	s.index[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *Selection[K]) Remove(id K) {
	if !s.Has(id) {
		return
	}
	delete(s.index, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Toggle 切换选中状态，返回切换后是否选中
func (s *Selection[K]) Toggle(id K) bool {
	if s.Has(id) {
		s.Remove(id)
		return false
	}
	s.Add(id)
	return true
}

// IDs 返回选中 id 的副本
func (s *Selection[K]) IDs() []K {
	out := make([]K, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Selection[K]) Len() int {
	return len(s.order)
}

// Clear 清空选择
func (s *Selection[K]) Clear() {
	s.order = nil
	s.index = make(map[K]struct{})
}
