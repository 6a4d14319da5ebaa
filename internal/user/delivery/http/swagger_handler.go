package http

// Register godoc
// @Summary Register a new customer
// @Description Create a customer account. The email is stored trimmed and lowercased.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} object{user=domain.PublicUser}
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/auth/register [post]
func (h *UserHandler) RegisterDoc() {}

// Login godoc
// @Summary Log in
// @Description Verify credentials and set the session cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} object{user=domain.PublicUser}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /api/auth/login [post]
func (h *UserHandler) LoginDoc() {}

// Logout godoc
// @Summary Log out
// @Description Clear the session cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} object{ok=bool}
// @Router /api/auth/logout [post]
func (h *UserHandler) LogoutDoc() {}

// Me godoc
// @Summary Current customer
// @Description Returns the logged in customer or null
// @Tags Auth
// @Produce json
// @Success 200 {object} object{user=domain.PublicUser}
// @Router /api/auth/me [get]
func (h *UserHandler) MeDoc() {}
