// Package model содержит доменные сущности сервиса абхико.
package model

import "time"

// User представляет зарегистрированного пользователя с бонусным счётом.
type User struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Avatar   string `json:"avatar"`
	Points   int    `json:"points"`
}

// Profile содержит изменяемые поля профиля пользователя.
// Email и идентификатор через обновление профиля не меняются.
type Profile struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Avatar   string `json:"avatar"`
}

// MenuItem описывает позицию меню ресторана. Каталог неизменяем.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Restaurant описывает ресторан из внешнего каталога.
type Restaurant struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Location string     `json:"location"`
	Image    string     `json:"image"`
	Cuisine  string     `json:"cuisine"`
	Menu     []MenuItem `json:"menu"`
}

// CartItem описывает строку корзины: позиция меню и количество.
type CartItem struct {
	MenuItem
	Quantity int `json:"quantity"`
}

// Cart описывает собираемый заказ из одного ресторана.
// RestaurantID пуст тогда и только тогда, когда корзина пуста.
type Cart struct {
	Items               []CartItem `json:"items"`
	SpecialInstructions string     `json:"specialInstructions"`
	RestaurantID        string     `json:"restaurantId"`
}

// Order содержит неизменяемый снимок корзины, вычисленный при оформлении.
// Существует только между оформлением и подтверждением оплаты.
type Order struct {
	UserID              string     `json:"userId"`
	RestaurantID        string     `json:"restaurantId"`
	Items               []CartItem `json:"items"`
	Subtotal            float64    `json:"subtotal"`
	DeliveryFee         float64    `json:"deliveryFee"`
	Taxes               float64    `json:"taxes"`
	Discount            float64    `json:"discount"`
	Total               float64    `json:"total"`
	PointsEarned        int        `json:"pointsEarned"`
	PointsRedeemed      int        `json:"pointsRedeemed"`
	SpecialInstructions string     `json:"specialInstructions"`
	Timestamp           time.Time  `json:"timestamp"`
}

// Post описывает публикацию в ленте. После создания не меняется.
type Post struct {
	PostID         string    `json:"postId"`
	UserID         string    `json:"userId"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	RestaurantID   string    `json:"restaurantId"`
	RestaurantName string    `json:"restaurantName"`
	Image          string    `json:"image"`
	Timestamp      time.Time `json:"timestamp"`
}

// Author содержит денормализованные данные автора публикации.
type Author struct {
	FullName string `json:"fullName"`
	Avatar   string `json:"avatar"`
}

// EnrichedPost представляет публикацию с разрешёнными данными автора.
type EnrichedPost struct {
	Post
	Author Author `json:"author"`
}
