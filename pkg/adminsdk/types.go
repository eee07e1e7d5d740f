package adminsdk

import "fmt"

// ============================================================================
// Roles
// ============================================================================

// Role is the coarse-grained authorization category for the current actor.
// It is the single source of truth for every permission decision; profile
// fields never gate access.
type Role string

const (
	// RoleAnonymous is the unauthenticated sentinel, distinct from every
	// real role. It is the zero value of Role.
	RoleAnonymous Role = ""

	RoleRoot    Role = "root"
	RoleAdmin   Role = "admin"
	RoleUser    Role = "user"
	RoleCompany Role = "company"
)

// ParseRole validates a wire-level role string against the closed role set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleRoot, RoleAdmin, RoleUser, RoleCompany:
		return Role(s), nil
	case RoleAnonymous:
		return RoleAnonymous, nil
	default:
		return RoleAnonymous, fmt.Errorf("adminsdk: unknown role %q", s)
	}
}

// Authenticated reports whether the role belongs to a signed-in actor.
func (r Role) Authenticated() bool { return r != RoleAnonymous }

func (r Role) String() string { return string(r) }

// ============================================================================
// Session profile
// ============================================================================

// UserInfo is the authenticated actor's profile as returned by the login
// and who-am-I endpoints. All fields except Role are opaque display data.
type UserInfo struct {
	Name             string `json:"name,omitempty"`
	Avatar           string `json:"avatar,omitempty"`
	Job              string `json:"job,omitempty"`
	Organization     string `json:"organization,omitempty"`
	Location         string `json:"location,omitempty"`
	Email            string `json:"email,omitempty"`
	Introduction     string `json:"introduction,omitempty"`
	PersonalWebsite  string `json:"personalWebsite,omitempty"`
	JobName          string `json:"jobName,omitempty"`
	OrganizationName string `json:"organizationName,omitempty"`
	LocationName     string `json:"locationName,omitempty"`
	Phone            string `json:"phone,omitempty"`
	RegistrationDate string `json:"registrationDate,omitempty"`
	AccountID        int64  `json:"accountId,omitempty"`
	Certification    *int   `json:"certification,omitempty"`
	Role             Role   `json:"role,omitempty"`

	// CompanyState is the at-most-one linked business entity; present only
	// for roles that own a company record.
	CompanyState *CompanyState `json:"companyState,omitempty"`
}

// ProfileUpdate carries the mutable profile fields for PUT /user/profile.
type ProfileUpdate struct {
	Name             string `json:"name,omitempty"`
	Avatar           string `json:"avatar,omitempty"`
	Job              string `json:"job,omitempty"`
	Organization     string `json:"organization,omitempty"`
	Location         string `json:"location,omitempty"`
	Introduction     string `json:"introduction,omitempty"`
	PersonalWebsite  string `json:"personalWebsite,omitempty"`
	JobName          string `json:"jobName,omitempty"`
	OrganizationName string `json:"organizationName,omitempty"`
	LocationName     string `json:"locationName,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Certification    *int   `json:"certification,omitempty"`
}

// ============================================================================
// Authentication
// ============================================================================

// LoginResponse is the payload of POST /user/login.
type LoginResponse struct {
	Token    string   `json:"token"`
	UserInfo UserInfo `json:"userInfo"`

	// ExpiresAt is informational; expiry is enforced server-side and
	// surfaced as a business error code, never tracked by the client.
	ExpiresAt string `json:"expiresAt,omitempty"`
}

// ============================================================================
// Server-driven menu
// ============================================================================

// MenuRoute is one record of the server-driven menu returned by
// GET /user/menu. Children nest arbitrarily deep.
type MenuRoute struct {
	Path     string      `json:"path,omitempty"`
	Name     string      `json:"name"`
	Meta     *MenuMeta   `json:"meta,omitempty"`
	Children []MenuRoute `json:"children,omitempty"`
}

type MenuMeta struct {
	Locale       string `json:"locale,omitempty"`
	RequiresAuth bool   `json:"requiresAuth,omitempty"`
	Roles        []Role `json:"roles,omitempty"`
	Icon         string `json:"icon,omitempty"`
	Order        int    `json:"order,omitempty"`
}

// ============================================================================
// Users resource
// ============================================================================

// UserRecord is one row of the admin users listing.
type UserRecord struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	IsActive    bool   `json:"isActive"`
	Phone       string `json:"phone,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	Nickname    string `json:"nickname,omitempty"`
	Status      string `json:"status,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
	LastLoginAt string `json:"lastLoginAt,omitempty"`
}

// UserQuery filters and paginates GET /users.
type UserQuery struct {
	Page     int
	PageSize int
	Keyword  string
	Role     Role
	Status   string
}

// UserPage is the paginated payload of GET /users.
type UserPage struct {
	Data     []UserRecord `json:"data"`
	Total    int          `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"pageSize"`
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Nickname string `json:"nickname,omitempty"`
}

type UpdateUserRequest struct {
	Email    string `json:"email,omitempty"`
	Role     Role   `json:"role,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Nickname string `json:"nickname,omitempty"`
	Status   string `json:"status,omitempty"`
	IsActive *bool  `json:"isActive,omitempty"`
}

// ============================================================================
// Company-state resource
// ============================================================================

type MaterialInfo struct {
	MaterialName  string  `json:"materialName,omitempty"`
	MaterialCode  string  `json:"materialCode,omitempty"`
	Specification string  `json:"specification,omitempty"`
	Unit          string  `json:"unit,omitempty"`
	Price         float64 `json:"price,omitempty"`
	Supplier      string  `json:"supplier,omitempty"`
}

// CompanyState is the company record linked to a user account.
type CompanyState struct {
	ID                      int64         `json:"id,omitempty"`
	CompanyName             string        `json:"companyName"`
	CompanyCode             string        `json:"companyCode,omitempty"`
	MaterialInfo            *MaterialInfo `json:"materialInfo,omitempty"`
	CompanyPhone            string        `json:"companyPhone,omitempty"`
	WarrantyYear            int           `json:"warrantyYear,omitempty"`
	EPSAccount              string        `json:"epsAccount,omitempty"`
	EPSPassword             string        `json:"epsPassword,omitempty"`
	BankName                string        `json:"bankName,omitempty"`
	BankAccount             string        `json:"bankAccount,omitempty"`
	FrameworkContractExpire string        `json:"frameworkContractExpire,omitempty"`
	UserID                  int64         `json:"userId,omitempty"`
	CreatedAt               string        `json:"createdAt,omitempty"`
	UpdatedAt               string        `json:"updatedAt,omitempty"`
}

// CompanyQuery filters and paginates the company-state listing.
type CompanyQuery struct {
	CompanyName string
	CompanyCode string
	Page        int
	PageSize    int
}

// CompanyPage is the paginated payload of GET /api/company/.
type CompanyPage struct {
	Data     []CompanyState `json:"data"`
	Total    int            `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
}

type CreateCompanyStateRequest struct {
	CompanyName             string        `json:"companyName"`
	UserID                  int64         `json:"userId"`
	CompanyCode             string        `json:"companyCode,omitempty"`
	MaterialInfo            *MaterialInfo `json:"materialInfo,omitempty"`
	CompanyPhone            string        `json:"companyPhone,omitempty"`
	WarrantyYear            int           `json:"warrantyYear,omitempty"`
	EPSAccount              string        `json:"epsAccount,omitempty"`
	EPSPassword             string        `json:"epsPassword,omitempty"`
	BankName                string        `json:"bankName,omitempty"`
	BankAccount             string        `json:"bankAccount,omitempty"`
	FrameworkContractExpire string        `json:"frameworkContractExpire,omitempty"`
}

type UpdateCompanyStateRequest struct {
	CompanyCode             string        `json:"companyCode,omitempty"`
	MaterialInfo            *MaterialInfo `json:"materialInfo,omitempty"`
	CompanyPhone            string        `json:"companyPhone,omitempty"`
	WarrantyYear            int           `json:"warrantyYear,omitempty"`
	EPSAccount              string        `json:"epsAccount,omitempty"`
	EPSPassword             string        `json:"epsPassword,omitempty"`
	BankName                string        `json:"bankName,omitempty"`
	BankAccount             string        `json:"bankAccount,omitempty"`
	FrameworkContractExpire string        `json:"frameworkContractExpire,omitempty"`
}
