package api

import (
	"net/http"

	"roombook/internal/metrics"
	"roombook/internal/models"
)

func (s *HTTPServer) handleBookings(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("bookings")
	switch r.Method {
	case http.MethodGet:
		bookings, err := s.bookings.ListBookings(r.Context())
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		if bookings == nil {
			bookings = []*models.Booking{}
		}
		writeJSON(w, http.StatusOK, bookings)
	case http.MethodPost:
		var req models.Booking
		if err := decodeJSON(r, &req, false); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		booking, err := s.bookings.CreateBooking(r.Context(), &req)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, booking)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *HTTPServer) handleBookingByID(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("bookings")
	segments := pathSegments(r.URL.Path, "/api/v1/bookings/")
	if len(segments) != 1 {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	id := segments[0]

	switch r.Method {
	case http.MethodGet:
		booking, err := s.bookings.GetBooking(r.Context(), id)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, booking)
	case http.MethodPut:
		var fields models.BookingUpdate
		if err := decodeJSON(r, &fields, true); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		booking, err := s.bookings.UpdateBooking(r.Context(), id, &fields)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, booking)
	case http.MethodDelete:
		if err := s.bookings.DeleteBooking(r.Context(), id); err != nil {
			s.writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *HTTPServer) handleBuildings(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("buildings")
	switch r.Method {
	case http.MethodGet:
		buildings, err := s.buildings.ListBuildings(r.Context())
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		if buildings == nil {
			buildings = []*models.Building{}
		}
		writeJSON(w, http.StatusOK, buildings)
	case http.MethodPost:
		var req models.Building
		if err := decodeJSON(r, &req, false); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		building, err := s.buildings.CreateBuilding(r.Context(), &req)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, building)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *HTTPServer) handleBuildingByID(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("buildings")
	segments := pathSegments(r.URL.Path, "/api/v1/buildings/")
	if len(segments) != 1 {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	id := segments[0]

	switch r.Method {
	case http.MethodGet:
		building, err := s.buildings.GetBuilding(r.Context(), id)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, building)
	case http.MethodPut:
		var fields models.BuildingUpdate
		if err := decodeJSON(r, &fields, true); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		building, err := s.buildings.UpdateBuilding(r.Context(), id, &fields)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, building)
	case http.MethodDelete:
		if err := s.buildings.DeleteBuilding(r.Context(), id); err != nil {
			s.writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *HTTPServer) handleRooms(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("rooms")
	switch r.Method {
	case http.MethodGet:
		rooms, err := s.rooms.ListRooms(r.Context())
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		if rooms == nil {
			rooms = []*models.Room{}
		}
		writeJSON(w, http.StatusOK, rooms)
	case http.MethodPost:
		var req models.Room
		if err := decodeJSON(r, &req, false); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		room, err := s.rooms.CreateRoom(r.Context(), &req)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, room)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *HTTPServer) handleRoomByID(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("rooms")
	segments := pathSegments(r.URL.Path, "/api/v1/rooms/")

	// PATCH /api/v1/rooms/{id}/status updates the status in isolation.
	if len(segments) == 2 && segments[1] == "status" {
		if r.Method != http.MethodPatch {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		var body struct {
			RoomStatus string `json:"roomStatus"`
		}
		if err := decodeJSON(r, &body, true); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		room, err := s.rooms.UpdateRoomStatus(r.Context(), segments[0], body.RoomStatus)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, room)
		return
	}

	if len(segments) != 1 {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	id := segments[0]

	switch r.Method {
	case http.MethodGet:
		room, err := s.rooms.GetRoom(r.Context(), id)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, room)
	case http.MethodPut:
		var fields models.RoomUpdate
		if err := decodeJSON(r, &fields, true); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		room, err := s.rooms.UpdateRoom(r.Context(), id, &fields)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, room)
	case http.MethodDelete:
		if err := s.rooms.DeleteRoom(r.Context(), id); err != nil {
			s.writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}
