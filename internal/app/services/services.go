package services

// Business logic services defined in this package:
// - AuthService: admin credential check and account management
// - DepartmentService: department CRUD with unique-name enforcement
// - EmployeeService: employee CRUD, password hashing, upload handling
// - CascadeService: ordered dependent-row cleanup for aggregate deletes
// - TaskService: work allocation CRUD and task board events
// - TeamService: team CRUD with serialized member lists
// - ReviewService: leave request and feedback approval workflow
// - MetricsService: dashboard counters
