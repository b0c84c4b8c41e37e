package handler

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"hotel_manager/config"
	"hotel_manager/database"
	"hotel_manager/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

const roomAvailabilityChannel = "room_availability"

var (
	redisClient *redis.Client

	wsClients   = make(map[*websocket.Conn]bool)
	wsClientsMu sync.Mutex
)

// RoomAvailabilityEvent đẩy xuống client khi tình trạng một phòng thay đổi
type RoomAvailabilityEvent struct {
	RoomId     uint   `json:"roomId"`
	HotelId    uint   `json:"hotelId"`
	RoomNumber string `json:"roomNumber"`
	Status     string `json:"status"`
}

// InitRedis kết nối Redis và bắt đầu lắng nghe kênh cập nhật phòng.
// Chạy nhiều instance thì mọi instance đều nhận được sự kiện qua pub/sub.
func InitRedis() {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.ConfigOr("REDIS_ADDR", "localhost:6379"),
		Password: config.Config("REDIS_PASSWORD"),
		DB:       0,
	})

	go subscribeRoomAvailability()
}

func subscribeRoomAvailability() {
	ctx := context.Background()
	pubsub := redisClient.Subscribe(ctx, roomAvailabilityChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		fanOutToClients([]byte(msg.Payload))
	}
}

func fanOutToClients(payload []byte) {
	wsClientsMu.Lock()
	defer wsClientsMu.Unlock()
	for conn := range wsClients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(wsClients, conn)
		}
	}
}

// BroadcastRoomAvailability publish sự kiện phòng thay đổi lên Redis.
// Không chặn request: lỗi chỉ ghi log.
func BroadcastRoomAvailability(roomId uint) {
	if redisClient == nil {
		return
	}

	var room model.Room
	if err := database.DB.First(&room, roomId).Error; err != nil {
		log.Printf("Lỗi đọc phòng %d khi broadcast: %v", roomId, err)
		return
	}

	event := RoomAvailabilityEvent{
		RoomId:     room.ID,
		HotelId:    room.HotelId,
		RoomNumber: room.Number,
		Status:     room.Status,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Lỗi marshal sự kiện phòng %d: %v", roomId, err)
		return
	}

	go func() {
		if err := redisClient.Publish(context.Background(), roomAvailabilityChannel, payload).Err(); err != nil {
			log.Printf("Lỗi publish sự kiện phòng %d: %v", roomId, err)
		}
	}()
}

// WebSocketRoomUpdates kết nối realtime cho dashboard lễ tân
func WebSocketRoomUpdates() func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		wsClientsMu.Lock()
		wsClients[conn] = true
		wsClientsMu.Unlock()

		defer func() {
			wsClientsMu.Lock()
			delete(wsClients, conn)
			wsClientsMu.Unlock()
			conn.Close()
		}()

		// Giữ kết nối, client không cần gửi gì
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}
}
