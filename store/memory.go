package store

import (
	"sort"
	"sync"
	"time"

	"mingle_social/model"
)

// Memory 内存持久化网关实现
// 与 Gorm 实现保持相同语义，供单元测试以及无数据库的本地调试使用。
type Memory struct {
	mu sync.Mutex

	users         map[uint]model.User
	edges         []model.UserFriend
	rooms         []model.Room
	categoryLinks []model.UserCategory
	eventLinks    []model.UserEvent

	nextUserID uint
	nextRoomID uint

	err error
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		users:      make(map[uint]model.User),
		nextUserID: 1,
		nextRoomID: 1,
	}
}

// ForceError 让后续所有操作在变更状态前返回指定错误（测试网关故障路径用）
func (m *Memory) ForceError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// ---- 用户 ----

func (m *Memory) CreateUser(user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}

	if user.ID == 0 {
		user.ID = m.nextUserID
		m.nextUserID++
	} else if user.ID >= m.nextUserID {
		m.nextUserID = user.ID + 1
	}
	user.CreatedAt = time.Now()
	m.users[user.ID] = *user
	return nil
}

func (m *Memory) GetUserByID(id uint) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	user, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	user.Categories = m.categoriesOf(id)
	return &user, nil
}

func (m *Memory) GetUserByUsername(username string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	for _, user := range m.users {
		if user.Username == username {
			user.Categories = m.categoriesOf(user.ID)
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) GetUserByFirebaseID(firebaseID string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	for _, user := range m.users {
		if user.FirebaseID != nil && *user.FirebaseID == firebaseID {
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) ListUsers() ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	users := make([]model.User, 0, len(m.users))
	for _, user := range m.users {
		user.Categories = m.categoriesOf(user.ID)
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (m *Memory) UpdateUser(user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}

	if _, ok := m.users[user.ID]; !ok {
		return ErrNotFound
	}
	m.users[user.ID] = *user
	return nil
}

func (m *Memory) DeleteUser(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}

	if _, ok := m.users[id]; !ok {
		return ErrNotFound
	}
	delete(m.users, id)
	return nil
}

// categoriesOf 调用方必须已持有锁
func (m *Memory) categoriesOf(userID uint) []model.UserCategory {
	links := make([]model.UserCategory, 0)
	for _, link := range m.categoryLinks {
		if link.UserID == userID {
			links = append(links, link)
		}
	}
	return links
}

// ---- 好友关系边 ----

func (m *Memory) HasEdgeForRecipient(recipientID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}

	for _, edge := range m.edges {
		if edge.UsersID == recipientID {
			return true, nil
		}
	}
	return false, nil
}

func (m *Memory) CreateEdge(edge *model.UserFriend) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}

	edge.CreatedAt = time.Now()
	m.edges = append(m.edges, *edge)
	return nil
}

func (m *Memory) ReplacePendingWithAccepted(userID, senderID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}

	kept := m.edges[:0]
	for _, edge := range m.edges {
		if edge.UsersID != userID || edge.SendersID != senderID {
			kept = append(kept, edge)
		}
	}
	m.edges = append(kept, model.UserFriend{
		UsersID:   userID,
		SendersID: senderID,
		CreatedAt: time.Now(),
	})
	return nil
}

func (m *Memory) DeleteEdge(userID, senderID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}

	kept := m.edges[:0]
	for _, edge := range m.edges {
		if edge.UsersID != userID || edge.SendersID != senderID {
			kept = append(kept, edge)
		}
	}
	m.edges = kept
	return nil
}

func (m *Memory) ListFriends(userID uint) ([]model.FriendSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	friends := make([]model.FriendSummary, 0)
	for _, edge := range m.edges {
		if edge.SendersID != userID {
			continue
		}
		if user, ok := m.users[edge.UsersID]; ok {
			friends = append(friends, model.FriendSummary{
				ID:        user.ID,
				FirstName: user.FirstName,
				LastName:  user.LastName,
			})
		}
	}
	return friends, nil
}

func (m *Memory) ListIncomingRequests(userID uint) ([]model.FriendRequestItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	requests := make([]model.FriendRequestItem, 0)
	for _, edge := range m.edges {
		if edge.UsersID != userID {
			continue
		}
		if user, ok := m.users[edge.SendersID]; ok {
			requests = append(requests, model.FriendRequestItem{
				ID:        user.ID,
				FirstName: user.FirstName,
				LastName:  user.LastName,
				Message:   edge.Message,
			})
		}
	}
	return requests, nil
}

// ---- 房间 ----

func (m *Memory) ListRoomsForUser(userID uint) ([]model.RoomListItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	items := make([]model.RoomListItem, 0)
	for _, room := range m.rooms {
		if room.User1ID == room.User2ID {
			continue
		}
		if room.User1ID != userID && room.User2ID != userID {
			continue
		}
		otherID := room.User1ID
		if room.User1ID == userID {
			otherID = room.User2ID
		}
		other, ok := m.users[otherID]
		if !ok {
			continue
		}
		items = append(items, model.RoomListItem{
			ID:            room.ID,
			User1ID:       room.User1ID,
			User2ID:       room.User2ID,
			Added:         room.Added,
			CreatedAt:     room.CreatedAt,
			OtherUsername: other.Username,
		})
	}
	return items, nil
}

func (m *Memory) GetRoomByID(id uint) (*model.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	for _, room := range m.rooms {
		if room.ID == id {
			return &room, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) FindRoomByPair(user1ID, user2ID uint) (*model.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	for _, room := range m.rooms {
		if (room.User1ID == user1ID && room.User2ID == user2ID) ||
			(room.User1ID == user2ID && room.User2ID == user1ID) {
			return &room, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CreateRoom(room *model.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}

	room.ID = m.nextRoomID
	m.nextRoomID++
	room.CreatedAt = time.Now()
	m.rooms = append(m.rooms, *room)
	return nil
}

// ---- 用户-分类 / 用户-活动关联 ----

func (m *Memory) AddCategoryLink(link *model.UserCategory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}

	link.CreatedAt = time.Now()
	m.categoryLinks = append(m.categoryLinks, *link)
	return nil
}

func (m *Memory) RemoveCategoryLink(userID, categoryID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}

	kept := m.categoryLinks[:0]
	for _, link := range m.categoryLinks {
		if link.UserID != userID || link.CategoryID != categoryID {
			kept = append(kept, link)
		}
	}
	m.categoryLinks = kept
	return nil
}

func (m *Memory) ListCategoryLinks(userID uint) ([]model.UserCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.categoriesOf(userID), nil
}

func (m *Memory) GetCategoryLink(userID, categoryID uint) (*model.UserCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	for _, link := range m.categoryLinks {
		if link.UserID == userID && link.CategoryID == categoryID {
			return &link, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) AddEventLink(link *model.UserEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}

	if link.Status == "" {
		link.Status = "interested"
	}
	link.CreatedAt = time.Now()
	link.UpdatedAt = link.CreatedAt
	m.eventLinks = append(m.eventLinks, *link)
	return nil
}

func (m *Memory) RemoveEventLink(userID, eventID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}

	kept := m.eventLinks[:0]
	for _, link := range m.eventLinks {
		if link.UserID != userID || link.EventID != eventID {
			kept = append(kept, link)
		}
	}
	m.eventLinks = kept
	return nil
}

func (m *Memory) ListEventLinks(userID uint) ([]model.UserEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	links := make([]model.UserEvent, 0)
	for _, link := range m.eventLinks {
		if link.UserID == userID {
			links = append(links, link)
		}
	}
	return links, nil
}

func (m *Memory) GetEventLink(userID, eventID uint) (*model.UserEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	for _, link := range m.eventLinks {
		if link.UserID == userID && link.EventID == eventID {
			return &link, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) UpdateEventLink(link *model.UserEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}

	for i := range m.eventLinks {
		if m.eventLinks[i].UserID == link.UserID && m.eventLinks[i].EventID == link.EventID {
			m.eventLinks[i].Status = link.Status
			m.eventLinks[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return ErrNotFound
}

func (m *Memory) ListUsersAttendingEvent(eventID uint) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	users := make([]model.User, 0)
	for _, link := range m.eventLinks {
		if link.EventID != eventID {
			continue
		}
		if user, ok := m.users[link.UserID]; ok {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}
